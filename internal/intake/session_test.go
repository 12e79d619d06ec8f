package intake

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/gregglawdallas/caseval/internal/domain"
	"github.com/gregglawdallas/caseval/internal/store"
)

func newTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	require.NoError(t, s.Migrate(context.Background()))
	return s
}

func sampleLead() domain.CalculatorLead {
	return domain.CalculatorLead{
		CalculatorSource: domain.SourceMinor,
		Inputs:           domain.LeadInputs{InjuryType: "Sprains & Strains"},
		Valuation:        domain.LeadValuation{Net: decimal.NewFromInt(13612)},
		AIAudit:          "PNC reports sprains case. Net estimate revealed between $13,612 and $16,637.",
	}
}

func TestContactValidate(t *testing.T) {
	tests := []struct {
		name    string
		contact Contact
		wantErr bool
	}{
		{"Complete", Contact{Name: "Ana Ruiz", Phone: "(214) 555-0100", Agreed: true}, false},
		{"Missing name", Contact{Phone: "(214) 555-0100", Agreed: true}, true},
		{"Missing phone", Contact{Name: "Ana Ruiz", Agreed: true}, true},
		{"Disclosure unchecked", Contact{Name: "Ana Ruiz", Phone: "(214) 555-0100"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contact.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUnlockCapturesOneLead(t *testing.T) {
	st := newTestStore(t)
	sess := NewSession(st, zap.NewNop())
	ctx := context.Background()

	assert.False(t, sess.Unlocked())

	contact := Contact{Name: "Ana Ruiz", Phone: "(214) 555-0100", Agreed: true}
	saved, err := sess.Unlock(ctx, contact, sampleLead())
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.True(t, sess.Unlocked())
	assert.Equal(t, "Ana Ruiz", saved.Name)

	// A second unlock without an input change is rejected.
	_, err = sess.Unlock(ctx, contact, sampleLead())
	assert.Error(t, err)

	leads, err := st.ListLeads(ctx, store.LeadFilter{})
	require.NoError(t, err)
	assert.Len(t, leads, 1)
}

func TestTouchRelocksAndAllowsRecapture(t *testing.T) {
	st := newTestStore(t)
	sess := NewSession(st, zap.NewNop())
	ctx := context.Background()

	contact := Contact{Name: "Ana Ruiz", Phone: "(214) 555-0100", Agreed: true}
	_, err := sess.Unlock(ctx, contact, sampleLead())
	require.NoError(t, err)

	sess.Touch()
	assert.False(t, sess.Unlocked(), "input change relocks the estimate")

	_, err = sess.Unlock(ctx, contact, sampleLead())
	require.NoError(t, err)

	leads, err := st.ListLeads(ctx, store.LeadFilter{})
	require.NoError(t, err)
	assert.Len(t, leads, 2, "each unlock captures a fresh lead")
}

func TestUnlockRejectsIncompleteContact(t *testing.T) {
	st := newTestStore(t)
	sess := NewSession(st, zap.NewNop())

	_, err := sess.Unlock(context.Background(), Contact{Name: "Ana Ruiz"}, sampleLead())
	assert.Error(t, err)
	assert.False(t, sess.Unlocked(), "failed validation must not reveal figures")
}

type failingStore struct {
	store.Store
}

func (f *failingStore) SaveLead(ctx context.Context, lead domain.CalculatorLead) (*domain.CalculatorLead, error) {
	return nil, eris.New("disk full")
}

func TestUnlockRevealsOnStoreFailure(t *testing.T) {
	sess := NewSession(&failingStore{}, zap.NewNop())

	contact := Contact{Name: "Ana Ruiz", Phone: "(214) 555-0100", Agreed: true}
	saved, err := sess.Unlock(context.Background(), contact, sampleLead())

	require.NoError(t, err, "store failure stays out of the prospect's way")
	assert.Nil(t, saved)
	assert.True(t, sess.Unlocked(), "reveal is optimistic")
}
