package notification

type Service struct {
	mailer Mailer
	// to is the operations inbox receiving lead notifications.
	to string
}

func NewService(mailer Mailer, to string) *Service {
	return &Service{mailer: mailer, to: to}
}

// Dispatch renders the lead email and hands it to the provider, returning
// the provider message id.
func (s *Service) Dispatch(payload LeadPayload) (string, error) {
	subject, html := RenderLeadEmail(payload)
	return s.mailer.Send(s.to, subject, html)
}
