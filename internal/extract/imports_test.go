// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptImports_BindingForms(t *testing.T) {
	src := `import React from 'react';
import { useState, useEffect } from 'react';
import * as path from "node:path";
import './styles.css';
`
	refs := ScriptImports(src)
	assert.Equal(t, []string{"react", "react", "node:path", "./styles.css"}, refs)
}

func TestScriptImports_RelativePreservedVerbatim(t *testing.T) {
	refs := ScriptImports(`import { helper } from '../utils/helper.js';`)
	assert.Equal(t, []string{"../utils/helper.js"}, refs)
}

func TestScriptImports_NoImports(t *testing.T) {
	assert.Empty(t, ScriptImports("const x = 1;\nexport function f() {}\n"))
}

func TestPythonImports_BothForms(t *testing.T) {
	src := `import os
from pathlib import Path
import numpy as np
from collections.abc import Mapping
`
	refs := PythonImports(src)
	assert.Equal(t, []string{"os", "pathlib", "numpy", "collections.abc"}, refs)
}

func TestPythonImports_IndentedIgnored(t *testing.T) {
	src := "def lazy():\n    import json\n    return json\n"
	assert.Empty(t, PythonImports(src))
}

func TestPythonImports_DuplicatesPreserved(t *testing.T) {
	src := "import os\nimport os\n"
	assert.Equal(t, []string{"os", "os"}, PythonImports(src))
}
