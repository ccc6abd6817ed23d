// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestGetBatchIDFromContext(t *testing.T) {
	ctx := WithBatchID(context.Background(), "01HZX")

	batchID, ok := GetBatchIDFromContext(ctx)
	if !ok || batchID != "01HZX" {
		t.Errorf("expected 01HZX, got %q (ok=%v)", batchID, ok)
	}
}

func TestGetBatchIDFromContext_Missing(t *testing.T) {
	if _, ok := GetBatchIDFromContext(context.Background()); ok {
		t.Error("expected ok=false without a batch id")
	}
}
