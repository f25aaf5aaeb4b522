package httpapi

import (
	"time"

	"github.com/google/uuid"
	"github.com/oapi-codegen/nullable"

	"github.com/danphoto/portfolio-api/internal/domain"
)

// Request bodies. Field names follow the public API contract; image uploads
// always arrive as image_base64 (bare payload or data URI).

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

type createEventRequest struct {
	Name        string `json:"name"`
	Place       string `json:"place"`
	MMDD        string `json:"mmdd"`
	ImageBase64 string `json:"image_base64"`
}

type updateEventRequest struct {
	Name        *string `json:"name"`
	Place       *string `json:"place"`
	MMDD        *string `json:"mmdd"`
	ImageBase64 *string `json:"image_base64"`
}

type createThemeRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ImageBase64 string `json:"image_base64"`
}

type updateThemeRequest struct {
	Name        *string `json:"name"`
	ImageBase64 *string `json:"image_base64"`
}

type createPoseRequest struct {
	ImageBase64 string      `json:"image_base64"`
	HashtagIDs  []uuid.UUID `json:"hashtag_ids"`
}

type createPostRequest struct {
	Description  *string `json:"description"`
	ImageBase64  string  `json:"image_base64"`
	ThemeOfDayID string  `json:"theme_of_the_day_id"`
}

type createHashtagRequest struct {
	Name string `json:"name"`
}

type hashtagIDsRequest struct {
	HashtagIDs []uuid.UUID `json:"hashtag_ids"`
}

type createPlaceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Address     string  `json:"address"`
	Location    string  `json:"location"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Instagram   *string `json:"instagram"`
	Website     *string `json:"website"`
	ImageBase64 string  `json:"image_base64"`
}

type updatePlaceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Address     *string  `json:"address"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	Instagram   *string  `json:"instagram"`
	Website     *string  `json:"website"`
	ImageBase64 *string  `json:"image_base64"`
}

type categoryNameRequest struct {
	Name string `json:"name"`
}

type addPortfolioImageRequest struct {
	ImageBase64 string `json:"image_base64"`
}

type createSessionRequest struct {
	Name string `json:"name"`
}

type addPosesRequest struct {
	PoseIDs []uuid.UUID `json:"pose_ids"`
}

type updateCoverRequest struct {
	CoverURL string `json:"cover_url"`
}

// updateProfileRequest distinguishes an absent name (keep), an explicit null
// (clear), and a value (set).
type updateProfileRequest struct {
	Name nullable.Nullable[string] `json:"name"`
}

type updateAvatarRequest struct {
	ImageBase64 string `json:"image_base64"`
}

// Response bodies. The stored asset is always exposed as `url`.

type eventResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	Place     string     `json:"place"`
	MMDD      string     `json:"mmdd"`
	URL       string     `json:"url"`
	CreatedAt *time.Time `json:"created_at"`
}

func toEventResponse(e domain.Event) eventResponse {
	return eventResponse{ID: e.ID, Name: e.Name, Place: e.Place, MMDD: e.MMDD, URL: e.ImageURL, CreatedAt: e.CreatedAt}
}

type themeResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

func toThemeResponse(t domain.ThemeOfDay) themeResponse {
	return themeResponse{ID: t.ID, Name: t.Name, URL: t.ImageURL}
}

type poseResponse struct {
	ID        uuid.UUID  `json:"id"`
	URL       string     `json:"url"`
	CreatedAt *time.Time `json:"created_at"`
}

func toPoseResponse(p domain.Pose) poseResponse {
	return poseResponse{ID: p.ID, URL: p.ImageURL, CreatedAt: p.CreatedAt}
}

func toPoseResponses(ps []domain.Pose) []poseResponse {
	out := make([]poseResponse, len(ps))
	for i, p := range ps {
		out[i] = toPoseResponse(p)
	}
	return out
}

type postResponse struct {
	ID           uuid.UUID  `json:"id"`
	Description  *string    `json:"description"`
	URL          *string    `json:"url"`
	UserID       *uuid.UUID `json:"user_id"`
	ThemeOfDayID *string    `json:"theme_of_the_day_id"`
	CreatedAt    *time.Time `json:"created_at"`
}

func toPostResponse(p domain.Post) postResponse {
	return postResponse{
		ID:           p.ID,
		Description:  p.Description,
		URL:          p.ImageURL,
		UserID:       p.UserID,
		ThemeOfDayID: p.ThemeOfDayID,
		CreatedAt:    p.CreatedAt,
	}
}

func toPostResponses(ps []domain.Post) []postResponse {
	out := make([]postResponse, len(ps))
	for i, p := range ps {
		out[i] = toPostResponse(p)
	}
	return out
}

// postsPage is the pagination envelope for posts and portfolio images.
// page is zero-based; total_pages is ceil(count/limit).
type postsPage struct {
	Items      []postResponse `json:"items"`
	Count      uint64         `json:"count"`
	Page       uint32         `json:"page"`
	Limit      uint32         `json:"limit"`
	TotalPages uint32         `json:"total_pages"`
}

type hashtagResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func toHashtagResponse(h domain.Hashtag) hashtagResponse {
	return hashtagResponse{ID: h.ID, Name: h.Name}
}

func toHashtagResponses(hs []domain.Hashtag) []hashtagResponse {
	out := make([]hashtagResponse, len(hs))
	for i, h := range hs {
		out[i] = toHashtagResponse(h)
	}
	return out
}

type placeResponse struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Address     string     `json:"address"`
	Location    string     `json:"location"`
	Latitude    float64    `json:"latitude"`
	Longitude   float64    `json:"longitude"`
	Instagram   *string    `json:"instagram"`
	Website     *string    `json:"website"`
	URL         string     `json:"url"`
	CreatedAt   *time.Time `json:"created_at"`
}

func toPlaceResponse(p domain.Place) placeResponse {
	return placeResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Address:     p.Address,
		Location:    p.Location,
		Latitude:    p.Latitude,
		Longitude:   p.Longitude,
		Instagram:   p.Instagram,
		Website:     p.Website,
		URL:         p.ImageURL,
		CreatedAt:   p.CreatedAt,
	}
}

type categoryResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	CoverURL string    `json:"cover_url"`
}

func toCategoryResponse(c domain.PortfolioCategory) categoryResponse {
	return categoryResponse{ID: c.ID, Name: c.Name, CoverURL: c.CoverURL}
}

type portfolioImageResponse struct {
	ID         uuid.UUID  `json:"id"`
	CategoryID uuid.UUID  `json:"portfolio_category_id"`
	URL        string     `json:"url"`
	CreatedAt  *time.Time `json:"created_at"`
}

func toPortfolioImageResponse(img domain.PortfolioImage) portfolioImageResponse {
	return portfolioImageResponse{ID: img.ID, CategoryID: img.CategoryID, URL: img.ImageURL, CreatedAt: img.CreatedAt}
}

type portfolioImagesPage struct {
	Items      []portfolioImageResponse `json:"items"`
	Count      uint64                   `json:"count"`
	Page       uint32                   `json:"page"`
	Limit      uint32                   `json:"limit"`
	TotalPages uint32                   `json:"total_pages"`
}

type sessionResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CoverURL  string     `json:"cover_url"`
	CreatedAt *time.Time `json:"created_at"`
}

func toSessionResponse(s domain.Session) sessionResponse {
	return sessionResponse{ID: s.ID, Name: s.Name, CoverURL: s.CoverURL, CreatedAt: s.CreatedAt}
}

type userResponse struct {
	ID        uuid.UUID  `json:"id"`
	Name      *string    `json:"name"`
	Email     *string    `json:"email"`
	URL       *string    `json:"url"`
	CreatedAt *time.Time `json:"created_at"`
}

func toUserResponse(u domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, URL: u.AvatarURL, CreatedAt: u.CreatedAt}
}

type favoriteResponse struct {
	Favorite bool `json:"favorite"`
}

func totalPages(count uint64, limit uint32) uint32 {
	if count == 0 || limit == 0 {
		return 0
	}
	return uint32((count + uint64(limit) - 1) / uint64(limit))
}
