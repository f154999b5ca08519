package mongo

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	domainerrors "influencerhub/internal/domain/errors"
)

func TestCreatorDuplicateKeyError_MapsOffendingIndex(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    error
	}{
		{
			name:    "email index",
			message: `E11000 duplicate key error collection: hub.creators index: email_1 dup key: { email: "asha@example.com" }`,
			want:    domainerrors.ErrEmailTaken,
		},
		{
			name:    "instagram index",
			message: `E11000 duplicate key error collection: hub.creators index: instagramUsername_1 dup key: { instagramUsername: "asha.codes" }`,
			want:    domainerrors.ErrInstagramTaken,
		},
		{
			name:    "phone index",
			message: `E11000 duplicate key error collection: hub.creators index: phone_1 dup key: { phone: "+919876543210" }`,
			want:    domainerrors.ErrPhoneTaken,
		},
		{
			name:    "unrecognised index",
			message: `E11000 duplicate key error collection: hub.creators index: whatsappNumber_1 dup key: { whatsappNumber: "+919876543210" }`,
			want:    domainerrors.ErrConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := creatorDuplicateKeyError(errors.New(tt.message))
			assert.ErrorIs(t, got, tt.want)
		})
	}
}
