package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/souhailwaf/wareho/internal/domain/entity"
)

func TestSameEntity_PorIdentidadNoPorValor(t *testing.T) {
	a := &entity.Item{ID: "id-1", SKU: "SKU-A", Name: "Tornillo"}
	b := &entity.Item{ID: "id-1", SKU: "SKU-B", Name: "Otro nombre"}
	c := &entity.Item{ID: "id-2", SKU: "SKU-A", Name: "Tornillo"}

	assert.True(t, entity.SameEntity(a, b), "mismo ID: misma entidad aunque difieran los campos")
	assert.False(t, entity.SameEntity(a, c), "IDs distintos: entidades distintas aunque coincidan los campos")
}

func TestSameEntity_SinIDNuncaSonIguales(t *testing.T) {
	a := &entity.Item{SKU: "SKU-A"}
	b := &entity.Item{SKU: "SKU-A"}

	assert.False(t, entity.SameEntity(a, b), "entidades sin persistir no tienen identidad")
	assert.False(t, entity.SameEntity(nil, a))
}
