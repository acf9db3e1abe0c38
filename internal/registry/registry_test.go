package registry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cividesk/braintree-bridge/internal/domain/models"
)

type stubProcessor struct {
	kind models.ProcessorKind
}

func (s *stubProcessor) Name() models.ProcessorKind { return s.kind }

func (s *stubProcessor) ProcessPayment(ctx context.Context, bundle models.RequestBundle) (*models.PaymentOutcome, error) {
	return models.NoOpOutcome(bundle), nil
}

func (s *stubProcessor) CheckConfig() error { return nil }

func (s *stubProcessor) FormFields() []models.FormField { return nil }

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := New()

	require.NoError(t, r.Register(&stubProcessor{kind: models.ProcessorCard}))
	require.NoError(t, r.Register(&stubProcessor{kind: models.ProcessorACH}))

	p, err := r.Get(models.ProcessorACH)
	require.NoError(t, err)
	assert.Equal(t, models.ProcessorACH, p.Name())

	assert.Equal(t,
		[]models.ProcessorKind{models.ProcessorACH, models.ProcessorCard},
		r.Kinds())
}

func TestRegistry_DuplicateRegistrationFails(t *testing.T) {
	r := New()

	require.NoError(t, r.Register(&stubProcessor{kind: models.ProcessorCard}))
	err := r.Register(&stubProcessor{kind: models.ProcessorCard})

	assert.Error(t, err)
}

func TestRegistry_UnknownProcessor(t *testing.T) {
	r := New()

	_, err := r.Get("carrier_pigeon")

	assert.Error(t, err)
}
