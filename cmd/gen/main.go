package main

import (
	"privy/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.DeviceProfileModel{},
		model.RestroomModel{},
		model.ReviewModel{},
		model.SavedRestroomModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
