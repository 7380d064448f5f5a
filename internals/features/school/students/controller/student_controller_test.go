package controller

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	classModel "schooladmin_backend/internals/features/school/classes/model"
)

func TestEnsureClassInSection(t *testing.T) {
	sectionID := uuid.New()
	cls := classModel.ClassModel{ClassSectionID: sectionID}

	assert.NoError(t, ensureClassInSection(&cls, sectionID))

	err := ensureClassInSection(&cls, uuid.New())
	require.Error(t, err)
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}
