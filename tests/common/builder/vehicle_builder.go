//go:build unit || e2e

package builder

import (
	"fmt"

	"autoparts-pos/internal/domain/vehicle"
	reqdto "autoparts-pos/internal/handler/dto/request"
	"autoparts-pos/internal/usecase/commands"

	"github.com/google/uuid"
)

type VehicleRangeBuilder struct {
	Brand     string
	Model     string
	YearStart int
	YearEnd   *int
	Selected  []vehicle.Model
}

func NewVehicleRangeBuilder() *VehicleRangeBuilder {
	end := 2020
	return &VehicleRangeBuilder{
		Brand:     "Toyota",
		Model:     "Yaris",
		YearStart: 2018,
		YearEnd:   &end,
	}
}

func (b *VehicleRangeBuilder) With(mutate func(*VehicleRangeBuilder)) *VehicleRangeBuilder {
	mutate(b)
	return b
}

func (b *VehicleRangeBuilder) WithSelected(models ...vehicle.Model) *VehicleRangeBuilder {
	b.Selected = append(b.Selected, models...)
	return b
}

// Build methods
func (b *VehicleRangeBuilder) BuildRequestDTO() reqdto.AddVehicleRangeRequest {
	req := reqdto.AddVehicleRangeRequest{
		Brand:     b.Brand,
		Model:     b.Model,
		YearStart: reqdto.NewYearInput(b.YearStart),
		Selected:  BuildSelectionDTO(b.Selected...),
	}
	if b.YearEnd != nil {
		req.YearEnd = reqdto.NewYearInput(*b.YearEnd)
	}
	return req
}

func (b *VehicleRangeBuilder) BuildCommand() commands.AddRangeRequest {
	return commands.AddRangeRequest{
		Brand:     b.Brand,
		Model:     b.Model,
		YearStart: b.YearStart,
		YearEnd:   b.YearEnd,
		Selected:  append([]vehicle.Model{}, b.Selected...),
	}
}

// BuildModels returns one catalog model per year with fresh ids, in upper case as the catalog stores them.
func (b *VehicleRangeBuilder) BuildModels() []vehicle.Model {
	r, err := vehicle.NewRange(b.Brand, b.Model, b.YearStart, b.YearEnd)
	if err != nil {
		panic(fmt.Sprintf("builder range is invalid: %v", err))
	}
	models := make([]vehicle.Model, 0, r.Len())
	for _, y := range r.Years() {
		models = append(models, NewVehicleModel(r.Brand(), r.Model(), y))
	}
	return models
}

func NewVehicleModel(brand, model string, year int) vehicle.Model {
	return vehicle.Model{ID: uuid.NewString(), Brand: brand, Model: model, Year: year}
}

func BuildSelectionDTO(models ...vehicle.Model) []reqdto.VehicleModelRequest {
	out := make([]reqdto.VehicleModelRequest, 0, len(models))
	for _, m := range models {
		out = append(out, reqdto.VehicleModelRequest{ID: m.ID, Brand: m.Brand, Model: m.Model, Year: m.Year})
	}
	return out
}
