package api

import "time"

// Types mirror the REST payloads field for field.

type User struct {
	Id        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Nickname  string    `json:"nickname"`
	AvatarURL string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type GalaxyResult struct {
	PredictedClass int                `json:"predicted_class"`
	ClassName      string             `json:"class_name"`
	Confidence     float64            `json:"confidence"`
	AllPredictions map[string]float64 `json:"all_predictions"`
}

type GalaxyHistoryItem struct {
	Id             string    `json:"id"`
	ImagePath      string    `json:"image_path"`
	PredictedClass int       `json:"predicted_class"`
	ClassName      string    `json:"class_name"`
	Confidence     float64   `json:"confidence"`
	CreatedAt      time.Time `json:"created_at"`
}

type Detection struct {
	Class      string  `json:"class"`
	Confidence float64 `json:"confidence"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
}

type ConstellationResult struct {
	DetectedConstellations []Detection `json:"detected_constellations"`
	Count                  int         `json:"count"`
	Confidence             float64     `json:"confidence"`
}

type ConstellationHistoryItem struct {
	Id                     string      `json:"id"`
	ImagePath              string      `json:"image_path"`
	DetectedConstellations []Detection `json:"detected_constellations"`
	Confidence             float64     `json:"confidence"`
	CreatedAt              time.Time   `json:"created_at"`
}

type PositioningResult struct {
	Solved      bool     `json:"solved"`
	Ra          *float64 `json:"ra,omitempty"`
	Dec         *float64 `json:"dec,omitempty"`
	FieldWidth  *float64 `json:"field_width,omitempty"`
	FieldHeight *float64 `json:"field_height,omitempty"`
	Orientation *float64 `json:"orientation,omitempty"`
	SolveTime   *float64 `json:"solve_time,omitempty"`
}

type PositioningHistoryItem struct {
	Id          string    `json:"id"`
	ImagePath   string    `json:"image_path"`
	Solved      bool      `json:"solved"`
	Ra          *float64  `json:"ra"`
	Dec         *float64  `json:"dec"`
	FieldWidth  *float64  `json:"field_width"`
	FieldHeight *float64  `json:"field_height"`
	Orientation *float64  `json:"orientation"`
	SolveTime   *float64  `json:"solve_time"`
	CreatedAt   time.Time `json:"created_at"`
}

type HomepageContent struct {
	Id          string    `json:"id"`
	ContentType string    `json:"content_type"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url"`
	LinkURL     string    `json:"link_url"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
}

type ChatReply struct {
	SessionId string `json:"session_id"`
	Message   string `json:"message"`
	Role      string `json:"role"`
}

type ChatHistoryItem struct {
	Id            string    `json:"id"`
	SessionId     string    `json:"session_id"`
	Role          string    `json:"role"`
	Content       string    `json:"content"`
	ModuleContext *string   `json:"module_context"`
	CreatedAt     time.Time `json:"created_at"`
}

type SpaceView struct {
	Id              string                 `json:"id"`
	DataType        string                 `json:"data_type"`
	SourceId        *string                `json:"source_id"`
	CelestialObject *string                `json:"celestial_object"`
	Ra              *float64               `json:"ra"`
	Dec             *float64               `json:"dec"`
	Distance        *float64               `json:"distance"`
	ViewData        map[string]interface{} `json:"view_data"`
	CreatedAt       time.Time              `json:"created_at"`
}

type SaveViewRequest struct {
	DataType        string                 `json:"data_type"`
	SourceId        *string                `json:"source_id,omitempty"`
	CelestialObject *string                `json:"celestial_object,omitempty"`
	Ra              *float64               `json:"ra,omitempty"`
	Dec             *float64               `json:"dec,omitempty"`
	Distance        *float64               `json:"distance,omitempty"`
	ViewData        map[string]interface{} `json:"view_data,omitempty"`
}
