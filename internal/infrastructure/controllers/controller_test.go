package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rios0rios0/depgate/internal/infrastructure/controllers"
)

func TestControllerBinds(t *testing.T) {
	t.Parallel()

	t.Run("should expose the check command metadata", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewCheckController(nil)

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "check [name min max]", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})

	t.Run("should expose the list command metadata", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewListController(nil)

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "list", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})

	t.Run("should expose the version command metadata", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewVersionController()

		// when
		bind := controller.GetBind()

		// then
		assert.Equal(t, "version", bind.Use)
	})
}
