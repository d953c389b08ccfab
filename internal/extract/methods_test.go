// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanMethods_NoOpeningBrace(t *testing.T) {
	assert.Empty(t, scanMethods("class Stub", 0))
}

func TestScanMethods_OffsetOutOfRange(t *testing.T) {
	assert.Empty(t, scanMethods("class A {}", 99))
	assert.Empty(t, scanMethods("class A {}", -1))
}

func TestScanMethods_NestedBraces(t *testing.T) {
	src := `class Outer {
  build() {
    return { a: { b: 1 } };
  }
}
function afterClass(x) {
}`

	methods := scanMethods(src, 0)
	require.Len(t, methods, 1)
	assert.Equal(t, "build", methods[0].Name)
}

func TestScanMethods_MissingCloseBraceScansToEnd(t *testing.T) {
	src := `class Broken {
  first() {
  }
  second(x) {
  }`

	methods := scanMethods(src, 0)
	require.Len(t, methods, 2)
	assert.Equal(t, "first", methods[0].Name)
	assert.Equal(t, "second", methods[1].Name)
}

func TestScanMethods_ModifierKeywords(t *testing.T) {
	src := `class Svc {
  static create(cfg) {
  }
  private async flush() {
  }
  get state() {
  }
  set state(v) {
  }
}`

	methods := scanMethods(src, 0)
	require.Len(t, methods, 4)
	assert.Equal(t, "create", methods[0].Name)
	assert.Equal(t, "flush", methods[1].Name)
	assert.Equal(t, "state", methods[2].Name)
	assert.Equal(t, "state(v)", methods[3].Signature)
}

func TestScanMethods_ControlKeywordsRejected(t *testing.T) {
	src := `class Loop {
  run(items) {
    for (const item of items) {
      process(item);
    }
    while (this.busy) {
      wait();
    }
    switch (this.mode) {
    }
  }
}`

	methods := scanMethods(src, 0)
	require.Len(t, methods, 1)
	assert.Equal(t, "run", methods[0].Name)
}

func TestScanMethods_AnchoredAtOffset(t *testing.T) {
	src := `class First {
  alpha() {}
}
class Second {
  beta() {}
}`

	offset := strings.Index(src, "class Second")
	methods := scanMethods(src, offset)
	require.Len(t, methods, 1)
	assert.Equal(t, "beta", methods[0].Name)
}
