package hostedpay

import (
	"strconv"
	"strings"
)

// Weights of the national 7-3-1 reference number scheme, applied from the
// rightmost digit.
var referenceWeights = [...]int{7, 3, 1}

// ReferenceNumber appends the 7-3-1 check digit to source. Characters other
// than ASCII digits count as zero.
//
//	ReferenceNumber("123") // "1232"
func ReferenceNumber(source string) string {
	digits := []rune(source)
	sum := 0
	for i := range digits {
		r := digits[len(digits)-1-i]
		if r < '0' || r > '9' {
			continue
		}
		sum += int(r-'0') * referenceWeights[i%len(referenceWeights)]
	}
	return source + strconv.Itoa((10-sum%10)%10)
}

// referenceSource drops the first ASCII letter of an order number so that
// "R123" yields the reference base "123". Later letters are kept and weigh
// zero in [ReferenceNumber].
func referenceSource(number string) string {
	i := strings.IndexFunc(number, func(r rune) bool {
		return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
	})
	if i < 0 {
		return number
	}
	return number[:i] + number[i+1:]
}
