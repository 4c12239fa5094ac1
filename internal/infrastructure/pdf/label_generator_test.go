package pdf

import (
	"bytes"
	"testing"

	"github.com/jhoicas/Repuestos-api/internal/domain/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateLabel(t *testing.T) {
	g := NewLabelGenerator("")
	out, err := g.GenerateLabel(&entity.SparePart{InternalArticleNumber: "P-0001", Name: "Kullager 6204", Location: "A1"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "la salida debe ser un PDF")
}

func TestGenerateSheet_FilaIncompleta(t *testing.T) {
	g := NewLabelGenerator("Etiketter")
	parts := []*entity.SparePart{
		{InternalArticleNumber: "A"}, {InternalArticleNumber: "B"}, {InternalArticleNumber: "C"}, {InternalArticleNumber: "D"},
	}
	out, err := g.GenerateSheet(parts)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerate_Errores(t *testing.T) {
	g := NewLabelGenerator("")
	_, err := g.GenerateLabel(nil)
	assert.Error(t, err)
	_, err = g.GenerateSheet(nil)
	assert.Error(t, err)
}

func TestPlaceLine(t *testing.T) {
	assert.Equal(t, "Plats: -", placeLine(&entity.SparePart{}))
	assert.Equal(t, "Plats: A1 · Hus 3 · 2", placeLine(&entity.SparePart{Location: "A1", Building: "Hus 3", ShelfLevel: " 2 "}))
}
