package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryCountFlagShorthand(t *testing.T) {
	flag := historyCmd.Flags().ShorthandLookup("n")
	require.NotNil(t, flag)
	assert.Equal(t, "number", flag.Name)
	assert.Equal(t, "20", flag.DefValue)
}
