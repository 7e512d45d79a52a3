package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigArgs(t *testing.T) {
	tests := []struct {
		args []string
		want []string
	}{
		{args: []string{"serve"}, want: nil},
		{args: []string{"-c", "prod.yml", "serve"}, want: []string{"-c", "prod.yml"}},
		{args: []string{"jwt", "--subject", "x", "--config", "dev.yml"}, want: []string{"-c", "dev.yml"}},
		{args: []string{"migrate", "--config=ci.yml"}, want: []string{"-c", "ci.yml"}},
		{args: []string{"classify", "-c=local.yml", "--offline"}, want: []string{"-c", "local.yml"}},
		{args: []string{"serve", "-c"}, want: nil},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, configArgs(tt.args), "%v", tt.args)
	}
}
