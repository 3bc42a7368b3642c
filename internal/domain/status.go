package domain

type LedgerKind string

const (
	KindTransfer         LedgerKind = "transfer"
	KindBusinessPayment  LedgerKind = "business_payment"
	KindBusinessDeposit  LedgerKind = "business_deposit"
	KindBusinessWithdraw LedgerKind = "business_withdraw"
	KindCodeRedemption   LedgerKind = "code_redemption"
	KindWelcomeGrant     LedgerKind = "welcome_grant"
	KindAdsFund          LedgerKind = "ads_fund"
)

type LedgerStatus string

const (
	LedgerPending   LedgerStatus = "pending"
	LedgerCompleted LedgerStatus = "completed"
	LedgerFailed    LedgerStatus = "failed"
	LedgerCancelled LedgerStatus = "cancelled"
)

type InvoiceStatus string

const (
	InvoicePending   InvoiceStatus = "pending"
	InvoicePaid      InvoiceStatus = "paid"
	InvoiceExpired   InvoiceStatus = "expired"
	InvoiceCancelled InvoiceStatus = "cancelled"
)

var invoiceTransitions = map[InvoiceStatus][]InvoiceStatus{
	InvoicePending: {InvoicePaid, InvoiceExpired, InvoiceCancelled},
}

// CanTransition reports whether an invoice may move from s to next.
// Only pending invoices move; every other state is terminal.
func (s InvoiceStatus) CanTransition(next InvoiceStatus) bool {
	for _, allowed := range invoiceTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestAccepted RequestStatus = "accepted"
	RequestDeclined RequestStatus = "declined"
)

type ImpressionStatus string

const (
	ImpressionStarted  ImpressionStatus = "started"
	ImpressionViewable ImpressionStatus = "viewable"
)

func (s ImpressionStatus) CanTransition(next ImpressionStatus) bool {
	return s == ImpressionStarted && next == ImpressionViewable
}

type BidModel string

const (
	BidCPM BidModel = "cpm"
	BidCPC BidModel = "cpc"
)

func (m BidModel) Valid() bool {
	return m == BidCPM || m == BidCPC
}

// Status of campaigns and creatives.
type AdStatus string

const (
	AdActive AdStatus = "active"
	AdPaused AdStatus = "paused"
)

type TransferDirection string

const (
	DirectionDeposit  TransferDirection = "deposit"
	DirectionWithdraw TransferDirection = "withdraw"
)

func (d TransferDirection) Valid() bool {
	return d == DirectionDeposit || d == DirectionWithdraw
}
