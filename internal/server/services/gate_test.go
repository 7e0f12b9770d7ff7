package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/opsbot/internal/common"
	"github.com/dmitrijs2005/opsbot/internal/logging"
	"github.com/stretchr/testify/assert"
)

func Test_boundary(t *testing.T) {
	ctx := context.Background()
	log := logging.Nop{}

	assert.NoError(t, boundary(ctx, log, nil))
	assert.Equal(t, common.ErrorNotFound, boundary(ctx, log, fmt.Errorf("x: %w", common.ErrorNotFound)))
	assert.Equal(t, common.ErrorAlreadyExists, boundary(ctx, log, fmt.Errorf("email: %w", common.ErrorAlreadyExists)))
	assert.Equal(t, common.ErrorInternal, boundary(ctx, log, errors.New("disk on fire")))

	wrapped := fmt.Errorf("details: bad: %w", common.ErrorInvalidArgument)
	assert.Equal(t, wrapped, boundary(ctx, log, wrapped))
}
