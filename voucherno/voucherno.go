// Package voucherno derives branch and financial-year scoped voucher numbers
// of the form PPPYYZZNNNN: a three-character branch code, a four-digit
// April-to-March financial-year tag, and a four-digit zero-padded sequence.
package voucherno

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// HeadOfficeCode is the default branch code when the login prefix cannot be
// normalized to anything usable.
const HeadOfficeCode = "HOF"

// branchCodes maps known branch names and aliases to their codes.
var branchCodes = map[string]string{
	"head office":     HeadOfficeCode,
	"salem":           "SLM",
	"coimbatore":      "CBE",
	"chennai":         "CHN",
	"madurai":         "MDU",
	"trichy":          "TRY",
	"tiruchirappalli": "TRY",
	"erode":           "ERD",
	"hosur":           "HSR",
	"tirupur":         "TUP",
	"karur":           "KRR",
}

// NormalizeBranch resolves a login prefix to a branch code. Unrecognized
// input falls back to stripping non-alphanumerics and truncating to three
// characters; empty results default to the head-office code. The second
// return reports whether the fallback heuristic was used, so callers can
// log unrecognized branches instead of masking them silently.
func NormalizeBranch(prefix string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(prefix))
	if code, ok := branchCodes[key]; ok {
		return code, false
	}

	var b strings.Builder
	for _, r := range key {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
		if b.Len() == 3 {
			break
		}
	}
	code := b.String()
	if code == "" {
		return HeadOfficeCode, true
	}
	return code, true
}

// FYTag returns the financial-year tag for a date: the fiscal year starts in
// April, so any month before April belongs to the year that started the
// previous calendar year. Tag is two-digit start year + two-digit end year
// ("2425" for FY 2024–25).
func FYTag(asOf time.Time) string {
	start := asOf.Year()
	if asOf.Month() < time.April {
		start--
	}
	return fmt.Sprintf("%02d%02d", start%100, (start+1)%100)
}

// Prefix is the fixed leading part shared by all vouchers of one branch and
// financial year.
func Prefix(code, fyTag string) string {
	return code + fyTag
}

// Format composes the full voucher number from its parts.
func Format(code, fyTag string, seq int) string {
	return fmt.Sprintf("%s%s%04d", code, fyTag, seq)
}

// SequenceOf extracts the numeric sequence from an existing voucher number:
// the rightmost four digits. Malformed numbers count as zero.
func SequenceOf(voucherNumber string) int {
	if len(voucherNumber) < 4 {
		return 0
	}
	n, err := strconv.Atoi(voucherNumber[len(voucherNumber)-4:])
	if err != nil {
		return 0
	}
	return n
}

// MaxSequence returns the highest sequence among existing voucher numbers,
// zero when there are none.
func MaxSequence(voucherNumbers []string) int {
	max := 0
	for _, vn := range voucherNumbers {
		if n := SequenceOf(vn); n > max {
			max = n
		}
	}
	return max
}
