package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"notesapi/internal/repo"
)

// RevokedTokenCleanupJob drops denylist rows whose token has expired
// anyway, keeping the revocation table from growing forever.
type RevokedTokenCleanupJob struct {
	tokens *repo.RevokedTokenRepo
}

func NewRevokedTokenCleanupJob(tokens *repo.RevokedTokenRepo) *RevokedTokenCleanupJob {
	return &RevokedTokenCleanupJob{tokens: tokens}
}

func (j *RevokedTokenCleanupJob) Name() string {
	return "revoked_token_cleanup"
}

func (j *RevokedTokenCleanupJob) Run(ctx context.Context) error {
	if j.tokens == nil {
		return nil
	}
	purged, err := j.tokens.DeleteExpired(ctx, time.Now().Unix())
	if err != nil {
		return err
	}
	if purged > 0 {
		logutil.GetLogger(ctx).Info("purged expired revoked tokens", zap.Int64("count", purged))
	}
	return nil
}
