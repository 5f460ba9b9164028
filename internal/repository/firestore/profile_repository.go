package firestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-matchjobs-backend/internal/domain"
)

// Candidate records live in a single collection keyed by user identifier.
const candidatesCollection = "candidatos"

type profileRepository struct {
	client *firestore.Client
}

func NewProfileRepository(client *firestore.Client) domain.ProfileRepository {
	return &profileRepository{client: client}
}

// Get returns the candidate record, or nil when no document exists.
func (r *profileRepository) Get(ctx context.Context, userID string) (domain.Record, error) {
	snap, err := r.client.Collection(candidatesCollection).Doc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get candidate %s: %w", userID, err)
	}
	return domain.Record(snap.Data()), nil
}

// Set replaces the candidate record wholesale and stamps the submission date
// with Firestore's server-assigned timestamp sentinel. There is no
// partial-update path.
func (r *profileRepository) Set(ctx context.Context, userID string, rec domain.Record) error {
	data := make(map[string]any, len(rec)+1)
	for k, v := range rec {
		data[k] = v
	}
	data["submissionDate"] = firestore.ServerTimestamp

	if _, err := r.client.Collection(candidatesCollection).Doc(userID).Set(ctx, data); err != nil {
		return fmt.Errorf("set candidate %s: %w", userID, err)
	}
	return nil
}
