package validation

type NewsletterRequest struct {
	Email string `json:"email"`
}

func ValidateNewsletter(req NewsletterRequest) (NewsletterRequest, *FieldError) {
	email, ferr := validEmail("email", req.Email)
	if ferr != nil {
		return NewsletterRequest{}, ferr
	}
	return NewsletterRequest{Email: email}, nil
}
