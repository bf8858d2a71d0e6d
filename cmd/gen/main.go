// Command gen generates typed gorm query helpers for the persistence models.
package main

import (
	"marketplace/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.CategoryModel{},
		model.ProductModel{},
		model.VendorModel{},
		model.FlashSaleModel{},
		model.BoostPlanModel{},
		model.BoostRequestModel{},
		model.OrderModel{},
		model.OrderItemModel{},
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/postgres/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(models...)

	g.Execute()
}
