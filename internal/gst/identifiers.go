package gst

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"taxengine/internal/domain"
)

const (
	gstinLength   = 15
	panLength     = 10
	pincodeLength = 6
	aadharLength  = 12
	ifscLength    = 11
)

var (
	gstinPattern   = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z][1-9A-Z]Z[0-9A-Z]$`)
	panPattern     = regexp.MustCompile(`^[A-Z]{5}[0-9]{4}[A-Z]$`)
	pincodePattern = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	mobilePattern  = regexp.MustCompile(`^(91)?[6-9][0-9]{9}$`)
	aadharPattern  = regexp.MustCompile(`^[0-9]{12}$`)
	ifscPattern    = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	hsnPattern     = regexp.MustCompile(`^[0-9]{4,8}$`)

	mobileNoise = regexp.MustCompile(`[\s\-+()]`)
)

// ValidateGSTIN checks the structure of a 15-character GSTIN. Only the fixed
// "Z" at position 14 is checked; the trailing check character is not verified.
func ValidateGSTIN(gstin string) bool {
	if len(gstin) != gstinLength {
		return false
	}
	return gstinPattern.MatchString(gstin)
}

// ValidatePAN checks a 10-character PAN.
func ValidatePAN(pan string) bool {
	if len(pan) != panLength {
		return false
	}
	return panPattern.MatchString(pan)
}

// ValidatePincode checks a 6-digit postal code that does not start with 0.
func ValidatePincode(pin string) bool {
	if len(pin) != pincodeLength {
		return false
	}
	return pincodePattern.MatchString(pin)
}

// ValidateIndianMobile accepts a 10-digit number starting 6-9, optionally
// prefixed with 91 or +91. Spaces, hyphens and parentheses are ignored.
func ValidateIndianMobile(mobile string) bool {
	if mobile == "" {
		return false
	}
	cleaned := mobileNoise.ReplaceAllString(mobile, "")
	if len(cleaned) != 10 && len(cleaned) != 12 {
		return false
	}
	return mobilePattern.MatchString(cleaned)
}

// ValidateAadhar checks for exactly 12 digits after removing whitespace.
// The Verhoeff check digit is not verified.
func ValidateAadhar(aadhar string) bool {
	if aadhar == "" {
		return false
	}
	cleaned := strings.Join(strings.Fields(aadhar), "")
	if len(cleaned) != aadharLength {
		return false
	}
	return aadharPattern.MatchString(cleaned)
}

// ValidateIFSC checks an 11-character IFSC whose fifth character is 0.
func ValidateIFSC(ifsc string) bool {
	if len(ifsc) != ifscLength {
		return false
	}
	return ifscPattern.MatchString(ifsc)
}

// ValidateStateCode checks a two-digit GST state code in the range 01-38.
func ValidateStateCode(code string) bool {
	if len(code) != 2 {
		return false
	}
	n, err := strconv.Atoi(code)
	return err == nil && n >= 1 && n <= 38
}

// ValidateHSNCode checks a 4 to 8 digit HSN/SAC code.
func ValidateHSNCode(code string) bool {
	if len(code) < 4 || len(code) > 8 {
		return false
	}
	return hsnPattern.MatchString(code)
}

// Validate dispatches to the validator for kind. Unknown kinds return false
// and ok=false.
func Validate(kind domain.IdentifierType, value string) (valid, ok bool) {
	fn, ok := validators[kind]
	if !ok {
		return false, false
	}
	return fn(value), true
}

var validators = map[domain.IdentifierType]func(string) bool{
	domain.IdentifierGSTIN:     ValidateGSTIN,
	domain.IdentifierPAN:       ValidatePAN,
	domain.IdentifierPincode:   ValidatePincode,
	domain.IdentifierMobile:    ValidateIndianMobile,
	domain.IdentifierAadhar:    ValidateAadhar,
	domain.IdentifierIFSC:      ValidateIFSC,
	domain.IdentifierStateCode: ValidateStateCode,
	domain.IdentifierHSN:       ValidateHSNCode,
}

// StateCodeFromGSTIN returns the two-digit state prefix of a GSTIN.
func StateCodeFromGSTIN(gstin string) (string, bool) {
	if len(gstin) < 2 {
		return "", false
	}
	code := gstin[:2]
	return code, ValidateStateCode(code)
}

// PANFromGSTIN returns the PAN embedded at GSTIN[2:12].
func PANFromGSTIN(gstin string) (string, bool) {
	if len(gstin) < 12 {
		return "", false
	}
	pan := gstin[2:12]
	return pan, ValidatePAN(pan)
}

// FieldIssue is a single problem found on a party or line.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// CheckParty runs the format and cross-field checks on a party. Empty fields
// are skipped; a consistent party yields no issues.
func CheckParty(prefix string, p domain.PartyGSTDetails) []FieldIssue {
	var issues []FieldIssue
	add := func(field, format string, args ...any) {
		issues = append(issues, FieldIssue{Field: prefix + "." + field, Message: fmt.Sprintf(format, args...)})
	}

	if p.GSTIN != "" && !ValidateGSTIN(p.GSTIN) {
		add("gstin", "%q is not a valid GSTIN", p.GSTIN)
	}
	if p.PANNumber != "" && !ValidatePAN(p.PANNumber) {
		add("pan_number", "%q is not a valid PAN", p.PANNumber)
	}
	if p.StateCode != "" && !ValidateStateCode(p.StateCode) {
		add("state_code", "%q is not a valid state code (01-38)", p.StateCode)
	}
	if p.Address.Pincode != "" && !ValidatePincode(p.Address.Pincode) {
		add("address.pincode", "%q is not a valid PIN code", p.Address.Pincode)
	}

	if len(p.GSTIN) >= 2 && p.StateCode != "" && p.GSTIN[:2] != p.StateCode {
		add("state_code", "GSTIN prefix %s does not match state code %s", p.GSTIN[:2], p.StateCode)
	}
	if len(p.GSTIN) >= 12 && p.PANNumber != "" && p.GSTIN[2:12] != p.PANNumber {
		add("pan_number", "GSTIN[2:12] %s does not match PAN %s", p.GSTIN[2:12], p.PANNumber)
	}
	return issues
}

// PartyStateCode returns the party's state code, falling back to the GSTIN prefix.
func PartyStateCode(p domain.PartyGSTDetails) string {
	if p.StateCode != "" {
		return p.StateCode
	}
	if code, ok := StateCodeFromGSTIN(p.GSTIN); ok {
		return code
	}
	return ""
}
