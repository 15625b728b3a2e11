package main

import (
	"clientes/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.RegionModel{},
		model.CustomerModel{},
		model.RoleModel{},
		model.UserModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
