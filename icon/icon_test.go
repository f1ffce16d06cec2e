package icon

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"github.com/twitchy-cli/twitchy/key"
)

func TestGet(t *testing.T) {
	Convey("Given the icon registry", t, func() {
		Convey("Every icon renders in every variant", func() {
			for _, variant := range AvailableVariants() {
				viper.Set(key.IconsVariant, variant)
				for id := range icons {
					So(Get(id), ShouldNotBeEmpty)
				}
			}
		})

		Convey("An unknown variant renders as nothing", func() {
			viper.Set(key.IconsVariant, "comic-sans")
			So(Get(Live), ShouldBeEmpty)
		})
	})
}
