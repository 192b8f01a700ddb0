package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"stockbook/internal/domain/sales"
)

func TestClassify(t *testing.T) {
	assert.Equal(t, ClassPending, Classify(sales.StatusProcessing))
	assert.Equal(t, ClassPending, Classify(sales.StatusSent))
	assert.Equal(t, ClassCounted, Classify(sales.StatusDelivered))
	assert.Equal(t, ClassReturned, Classify(sales.StatusReturned))
}

func TestClassify_UnknownStatusIsPending(t *testing.T) {
	assert.Equal(t, ClassPending, Classify(sales.Status("weird")))
}
