// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcerptConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		cfg    ExcerptConfig
		errMsg string
	}{
		{name: "defaults", cfg: DefaultExcerptConfig()},
		{name: "empty magic", cfg: ExcerptConfig{CommentCharacter: ";"}},
		{name: "empty comment", cfg: ExcerptConfig{MagicCharacter: "%"}, errMsg: "comment_character"},
		{name: "long comment", cfg: ExcerptConfig{CommentCharacter: "--", MagicCharacter: "%"}, errMsg: "comment_character"},
		{name: "long magic", cfg: ExcerptConfig{CommentCharacter: "#", MagicCharacter: "%%"}, errMsg: "magic_character"},
		{name: "same characters", cfg: ExcerptConfig{CommentCharacter: "#", MagicCharacter: "#"}, errMsg: "must differ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.errMsg == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestRenderConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RenderConfig
		wantErr bool
	}{
		{name: "defaults", cfg: DefaultRenderConfig()},
		{name: "goldmark", cfg: RenderConfig{Enabled: true, Engine: EngineGoldmark, Formats: []string{"html"}}},
		{name: "disabled without formats", cfg: RenderConfig{Engine: EnginePandoc}},
		{name: "enabled without formats", cfg: RenderConfig{Enabled: true, Engine: EnginePandoc}, wantErr: true},
		{name: "blank format", cfg: RenderConfig{Enabled: true, Engine: EnginePandoc, Formats: []string{"html", ""}}, wantErr: true},
		{name: "unknown engine", cfg: RenderConfig{Engine: "asciidoctor"}, wantErr: true},
		{name: "missing engine", cfg: RenderConfig{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestExcerptConfig_PathSpec(t *testing.T) {
	cfg := ExcerptConfig{Prefix: "p_", Postfix: "_q", OutputPath: "out"}
	assert.Equal(t, OutputPathSpec{Prefix: "p_", Postfix: "_q", OutputPath: "out", Extension: "md"}, cfg.PathSpec(MarkdownExtension))
}

func TestResult_Empty(t *testing.T) {
	assert.True(t, Result{Status: StatusEmpty}.Empty())
	assert.False(t, Result{Status: StatusWritten}.Empty())
}
