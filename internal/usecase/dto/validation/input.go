package validationdto

type RedeemInput struct {
	TokenID string
	// MerchantID identifies the scanning staff account; recorded for audit
	// only, never part of any validity decision.
	MerchantID string
	// EstablishmentID is the establishment the scanning merchant belongs
	// to. Must match the token's.
	EstablishmentID string
}
