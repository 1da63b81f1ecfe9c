package internal

// TranslationRequest is the body accepted by POST /translate.
type TranslationRequest struct {
	InputLang  string `json:"input_lang"`
	OutputLang string `json:"output_lang"`
	Text       string `json:"text"`
}

// Place photo lookup outcomes reported in PlacePhoto.Status.
const (
	PlaceStatusSuccess  = "success"
	PlaceStatusNotFound = "not_found"
	PlaceStatusNoPhotos = "no_photos"
)

// PlacePhoto is the result of a successful place photo lookup.
type PlacePhoto struct {
	Status    string `json:"status"`
	PlaceName string `json:"place_name"`
	PhotoURL  string `json:"photoUrl"`
}
