package booking

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const (
	DefaultReferencePrefix = "BK"
	ReferenceMaxLength     = 18
)

type ReferenceGenerator interface {
	Generate(prefix string) string
}

type RandomReferenceGenerator struct{}

func NewRandomReferenceGenerator() *RandomReferenceGenerator {
	return &RandomReferenceGenerator{}
}

// Generate returns {PREFIX}-XXXX-XXXXXX built from random uppercase hex.
func (RandomReferenceGenerator) Generate(prefix string) string {
	return NewReference(prefix)
}

func NewReference(prefix string) string {
	if prefix == "" {
		prefix = DefaultReferencePrefix
	}
	hex := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	ref := fmt.Sprintf("%s-%s-%s", prefix, hex[:4], hex[4:])
	if len(ref) > ReferenceMaxLength {
		ref = ref[:ReferenceMaxLength]
	}
	return ref
}
