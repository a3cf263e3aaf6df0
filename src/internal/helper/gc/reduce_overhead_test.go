// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPool(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T, buf Buffer)
	}{
		{
			name: "Write Operations",
			testFunc: func(t *testing.T, buf Buffer) {
				_, err := buf.Write([]byte("-----BEGIN "))
				require.NoError(t, err)
				_, err = buf.WriteString("CERTIFICATE")
				require.NoError(t, err)
				require.NoError(t, buf.WriteByte('-'))

				assert.Equal(t, "-----BEGIN CERTIFICATE-", buf.String())
				assert.Equal(t, 23, buf.Len())
			},
		},
		{
			name: "Reset Clears Contents",
			testFunc: func(t *testing.T, buf Buffer) {
				_, err := buf.WriteString("leftover")
				require.NoError(t, err)

				buf.Reset()
				assert.Zero(t, buf.Len())
				assert.Empty(t, buf.Bytes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := Default.Get()
			defer func() {
				buf.Reset()
				Default.Put(buf)
			}()
			tt.testFunc(t, buf)
		})
	}
}

func TestDefaultPoolConcurrent(t *testing.T) {
	var wg sync.WaitGroup

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				buf := Default.Get()
				_, _ = buf.WriteString("concurrent use")
				buf.Reset()
				Default.Put(buf)
			}
		}()
	}

	wg.Wait()
}
