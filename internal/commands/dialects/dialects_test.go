// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package dialects

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tombee/funtranslations/internal/commands/shared"
	"github.com/tombee/funtranslations/pkg/funtranslations"
)

func TestDialects_Table(t *testing.T) {
	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--service", "starwars"})

	require.NoError(t, cmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Starwars")
	assert.Contains(t, text, "yoda")
	assert.Contains(t, text, "get_translate_mandalorian")
	assert.NotContains(t, text, "pirate")
}

func TestDialects_JSON(t *testing.T) {
	_, _, jsonFlag, _ := shared.RegisterFlagPointers()
	*jsonFlag = true
	t.Cleanup(func() { *jsonFlag = false })

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	var resp Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Len(t, resp.Dialects, len(funtranslations.Operations()))

	var audio *Dialect
	for i := range resp.Dialects {
		if resp.Dialects[i].Tool == "get_translate_morse_audio" {
			audio = &resp.Dialects[i]
		}
	}
	require.NotNil(t, audio)
	assert.Equal(t, "morse/audio", audio.Name)
	assert.Len(t, audio.Params, 3)
}

func TestFilter(t *testing.T) {
	ops := funtranslations.Operations()

	assert.Len(t, filter(ops, ""), len(ops))
	assert.Len(t, filter(ops, "StarTrek"), 2)
	assert.Empty(t, filter(ops, "nope"))
}
