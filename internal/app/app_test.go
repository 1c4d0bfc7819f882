package app

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRecommenderApp_Initializers(t *testing.T) {
	app := NewRecommenderApp()
	require.NotNil(t, app, "NewRecommenderApp should not return nil")
}
