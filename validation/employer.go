package validation

import "karkhana/models"

// EmployerRegistration validates the employer basic-details step. The GSTIN
// must already have a server-side verification on record; gstVerified carries
// that fact.
func EmployerRegistration(req models.EmployerRegisterRequest, gstVerified bool) Errors {
	errs := Errors{}

	if !present(req.GSTIN) || !gstVerified {
		errs.Add("gstin", "Valid GST Number is required")
	}
	errs.Add("email", Email(req.Email))
	errs.Add("password", Password(req.Password))
	if !present(req.CompanyName) {
		errs.Add("company_name", "Company Name is required")
	}
	if !present(req.Industry) {
		errs.Add("industry", "Industry is required")
	}
	if !present(req.Address) {
		errs.Add("address", "Address is required")
	}

	return errs
}

// ContactInfo validates the employer contact step. The description bounds are
// not enforced, only presence; the email is optional but must be valid when
// given.
func ContactInfo(req models.ContactInfoRequest) Errors {
	errs := Errors{}

	if !present(req.ContactPersonName) {
		errs.Add("contactPersonName", "Contact person's name is required")
	}
	errs.Add("contactPersonPhone", firstError(req.ContactPersonPhone, []Rule{
		{present, "Phone number is required"},
		{phonePattern.MatchString, "Please enter a valid 10-digit phone number"},
	}))
	if !present(req.ContactPersonDesignation) {
		errs.Add("contactPersonDesignation", "Designation is required")
	}
	errs.Add("contactPersonEmail", OptionalEmail(req.ContactPersonEmail))
	if !present(req.CompanyDescription) {
		errs.Add("companyDescription", "Company description is required")
	}

	return errs
}
