package lead

// SubmitLeadRequest is the quote form submission: the raw form state plus
// the transient display price carried over from a pricing-tier deep link.
type SubmitLeadRequest struct {
	FormState
	PreSelectedPrice string `json:"preSelectedPrice,omitempty"`
}
