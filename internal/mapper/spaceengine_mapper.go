package mapper

import (
	"encoding/json"

	"astro-observer/internal/entity"
	"astro-observer/internal/model"

	"gorm.io/datatypes"
)

type SpaceViewMapper struct{}

func NewSpaceViewMapper() *SpaceViewMapper {
	return &SpaceViewMapper{}
}

func (m *SpaceViewMapper) ToEntity(v *model.SpaceView) *entity.SpaceView {
	if v == nil {
		return nil
	}
	var viewData map[string]interface{}
	if len(v.ViewData) > 0 {
		_ = json.Unmarshal(v.ViewData, &viewData)
	}
	return &entity.SpaceView{
		Id:              v.Id,
		UserId:          v.UserId,
		DataType:        v.DataType,
		SourceId:        v.SourceId,
		CelestialObject: v.CelestialObject,
		Ra:              v.Ra,
		Dec:             v.Dec,
		Distance:        v.Distance,
		ViewData:        viewData,
		CreatedAt:       v.CreatedAt,
	}
}

func (m *SpaceViewMapper) ToModel(v *entity.SpaceView) *model.SpaceView {
	if v == nil {
		return nil
	}
	var raw datatypes.JSON
	if v.ViewData != nil {
		b, _ := json.Marshal(v.ViewData)
		raw = datatypes.JSON(b)
	}
	return &model.SpaceView{
		Id:              v.Id,
		UserId:          v.UserId,
		DataType:        v.DataType,
		SourceId:        v.SourceId,
		CelestialObject: v.CelestialObject,
		Ra:              v.Ra,
		Dec:             v.Dec,
		Distance:        v.Distance,
		ViewData:        raw,
		CreatedAt:       v.CreatedAt,
	}
}
