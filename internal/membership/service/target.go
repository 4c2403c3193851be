package service

import (
	"net/mail"
	"strings"
	"unicode"
)

// normalizeTarget validates an invite target. Exactly one of email or phone
// must be set. Emails are lowercased; phones are reduced to E.164.
func normalizeTarget(email, phone string) (string, string, error) {
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)

	switch {
	case email != "" && phone != "":
		return "", "", ErrInvalidTarget
	case email != "":
		e, ok := normalizeEmail(email)
		if !ok {
			return "", "", ErrInvalidTarget
		}
		return e, "", nil
	case phone != "":
		p, ok := normalizePhone(phone)
		if !ok {
			return "", "", ErrInvalidTarget
		}
		return "", p, nil
	default:
		return "", "", ErrInvalidTarget
	}
}

func normalizeEmail(s string) (string, bool) {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return "", false
	}
	return strings.ToLower(addr.Address), true
}

// normalizePhone accepts "+", digits and common separators and returns
// "+<digits>". E.164 allows at most 15 digits.
func normalizePhone(s string) (string, bool) {
	var digits strings.Builder
	for i, r := range s {
		switch {
		case r == '+' && i == 0:
		case unicode.IsDigit(r) && r < unicode.MaxASCII:
			digits.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return "", false
		}
	}

	d := digits.String()
	if !strings.HasPrefix(s, "+") || len(d) < 8 || len(d) > 15 || d[0] == '0' {
		return "", false
	}
	return "+" + d, true
}
