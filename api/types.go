// Package api defines the request and response shapes of the back-office
// HTTP surface. Validation rules live on the request types as struct tags.
package api

import (
	"time"

	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationError struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	ValidationErrors []ValidationError `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type Metadata struct {
	CurrentPage  int `json:"currentPage"`
	FirstPage    int `json:"firstPage"`
	LastPage     int `json:"lastPage"`
	PageSize     int `json:"pageSize"`
	TotalRecords int `json:"totalRecords"`
}

// ListParams are the shared listing query parameters.
type ListParams struct {
	Page     *int    `validate:"omitempty,gte=1"`
	PageSize *int    `validate:"omitempty,gte=1,lte=100"`
	Term     *string `validate:"omitempty,max=100"`
	Sort     *string `validate:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ScreeningPeriod struct {
	Start string `json:"start" validate:"required,isodate"`
	End   string `json:"end" validate:"required,isodate"`
}

type CreateMovieRequest struct {
	Title           string          `json:"title" validate:"required,max=200"`
	Description     string          `json:"description" validate:"required"`
	Poster          string          `json:"poster" validate:"omitempty,uri"`
	Href            string          `json:"href" validate:"omitempty,uri"`
	Format          string          `json:"format" validate:"required,oneof=2D 3D"`
	Languages       []string        `json:"languages" validate:"required,min=1,dive,required"`
	Status          string          `json:"status" validate:"required,oneof=progress soon"`
	TopTier         bool            `json:"toptier"`
	Duration        int             `json:"duration" validate:"required,gt=0"`
	Genre           string          `json:"genre" validate:"required"`
	ReleaseDate     string          `json:"releaseDate" validate:"required,isodate"`
	ScreeningPeriod ScreeningPeriod `json:"screeningPeriod"`
}

type UpdateMovieRequest struct {
	Title           *string          `json:"title" validate:"omitempty,max=200"`
	Description     *string          `json:"description"`
	Poster          *string          `json:"poster" validate:"omitempty,uri"`
	Href            *string          `json:"href" validate:"omitempty,uri"`
	Format          *string          `json:"format" validate:"omitempty,oneof=2D 3D"`
	Languages       *[]string        `json:"languages" validate:"omitempty,min=1,dive,required"`
	Status          *string          `json:"status" validate:"omitempty,oneof=progress soon"`
	TopTier         *bool            `json:"toptier"`
	Duration        *int             `json:"duration" validate:"omitempty,gt=0"`
	Genre           *string          `json:"genre"`
	ReleaseDate     *string          `json:"releaseDate" validate:"omitempty,isodate"`
	ScreeningPeriod *ScreeningPeriod `json:"screeningPeriod"`
}

type MovieResponse struct {
	Id              int64           `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Poster          string          `json:"poster"`
	Href            string          `json:"href"`
	Format          string          `json:"format"`
	Languages       []string        `json:"languages"`
	Status          string          `json:"status"`
	TopTier         bool            `json:"toptier"`
	Duration        int             `json:"duration"`
	Genre           string          `json:"genre"`
	ReleaseDate     string          `json:"releaseDate"`
	ScreeningPeriod ScreeningPeriod `json:"screeningPeriod"`
	Deleted         bool            `json:"deleted"`
}

type MovieListResponse struct {
	Movies   []MovieResponse `json:"movies"`
	Metadata *Metadata       `json:"metadata,omitempty"`
}

type SeatRowRequest struct {
	Row   string `json:"row" validate:"required,alpha,max=2"`
	Seats []int  `json:"seats" validate:"required,min=1,dive,gt=0"`
}

type CreateHallRequest struct {
	Name     string           `json:"name" validate:"required,max=50"`
	Capacity int              `json:"capacity" validate:"required,gt=0"`
	Features []string         `json:"features" validate:"omitempty,dive,required"`
	SeatMap  []SeatRowRequest `json:"seatMap" validate:"required,min=1,dive"`
}

type UpdateHallRequest struct {
	Name     *string           `json:"name" validate:"omitempty,max=50"`
	Capacity *int              `json:"capacity" validate:"omitempty,gt=0"`
	Features *[]string         `json:"features" validate:"omitempty,dive,required"`
	SeatMap  *[]SeatRowRequest `json:"seatMap" validate:"omitempty,min=1,dive"`
}

type HallResponse struct {
	Id       int64     `json:"id"`
	Name     string    `json:"name"`
	Capacity int       `json:"capacity"`
	Features []string  `json:"features"`
	SeatMap  []SeatRow `json:"seatMap"`
}

type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
}

type CreateScreeningRequest struct {
	MovieId int64  `json:"movieId" validate:"required,gt=0"`
	Hall    string `json:"hall" validate:"required"`
	Date    string `json:"date" validate:"required,isodate"`
	Time    string `json:"time" validate:"required,hhmm"`
}

type UpdateScreeningRequest struct {
	MovieId *int64  `json:"movieId" validate:"omitempty,gt=0"`
	Hall    *string `json:"hall" validate:"omitempty"`
	Date    *string `json:"date" validate:"omitempty,isodate"`
	Time    *string `json:"time" validate:"omitempty,hhmm"`
}

type ScreeningResponse struct {
	Id         int64  `json:"id"`
	MovieId    int64  `json:"movieId"`
	MovieTitle string `json:"movieTitle"`
	Hall       string `json:"hall"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	Showtime   string `json:"showtime"`
	Deleted    bool   `json:"deleted"`
}

type ScreeningListResponse struct {
	Screenings []ScreeningResponse `json:"screenings"`
	Metadata   *Metadata           `json:"metadata,omitempty"`
}

// ScheduleConflictResponse is returned with HTTP 409 when another active
// screening already occupies the requested slot. The operator may override by
// re-submitting with confirm=true.
type ScheduleConflictResponse struct {
	Message   string            `json:"message"`
	Conflict  ScreeningResponse `json:"conflict"`
	RequestId string            `json:"requestId,omitempty"`
}

// DeleteWarningResponse is returned with HTTP 409 when deleting a screening
// that still has active bookings. The bookings are never cascaded.
type DeleteWarningResponse struct {
	Message        string `json:"message"`
	ActiveBookings int    `json:"activeBookings"`
	RequestId      string `json:"requestId,omitempty"`
}

type Seat struct {
	Id     string `json:"id"`
	Number int    `json:"number"`
	Status string `json:"status"` // free, booked or bought
}

type SeatRow struct {
	Row   string `json:"row"`
	Seats []Seat `json:"seats"`
}

type SeatMapResponse struct {
	ScreeningId int64     `json:"screeningId"`
	Hall        string    `json:"hall"`
	Showtime    string    `json:"showtime"`
	SeatRows    []SeatRow `json:"seatRows"`
	Booked      []string  `json:"booked"`
	Bought      []string  `json:"bought"`
}

type CreateBookingRequest struct {
	Seat          string          `json:"seat" validate:"required,seatid"`
	CustomerName  string          `json:"customerName" validate:"required,max=100"`
	CustomerEmail string          `json:"customerEmail" validate:"required,email"`
	CustomerPhone string          `json:"customerPhone" validate:"required,phone"`
	Status        string          `json:"status" validate:"omitempty,oneof=booked bought"`
	TotalPrice    decimal.Decimal `json:"totalPrice" validate:"price"`
}

type UpdateBookingRequest struct {
	CustomerName  *string          `json:"customerName" validate:"omitempty,max=100"`
	CustomerEmail *string          `json:"customerEmail" validate:"omitempty,email"`
	CustomerPhone *string          `json:"customerPhone" validate:"omitempty,phone"`
	Status        *string          `json:"status" validate:"omitempty,oneof=booked bought"`
	TotalPrice    *decimal.Decimal `json:"totalPrice" validate:"omitempty,price"`
}

type BookingResponse struct {
	Id            int64           `json:"id"`
	MovieId       int64           `json:"movieId"`
	MovieTitle    string          `json:"movieTitle"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customerEmail"`
	CustomerPhone string          `json:"customerPhone"`
	Hall          string          `json:"hall"`
	Seats         []string        `json:"seats"`
	Status        string          `json:"status"`
	BookingDate   string          `json:"bookingDate"`
	Showtime      string          `json:"showtime"`
	TotalPrice    decimal.Decimal `json:"totalPrice"`
	Deleted       bool            `json:"deleted"`
}

type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Metadata *Metadata         `json:"metadata,omitempty"`
}

type CreateUserRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Email  string `json:"email" validate:"required,email"`
	Phone  string `json:"phone" validate:"required,phone"`
	Status string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UpdateUserRequest struct {
	Name   *string `json:"name" validate:"omitempty,max=100"`
	Email  *string `json:"email" validate:"omitempty,email"`
	Phone  *string `json:"phone" validate:"omitempty,phone"`
	Status *string `json:"status" validate:"omitempty,oneof=active inactive"`
}

type UserResponse struct {
	Id               int64  `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	Status           string `json:"status"`
	RegistrationDate string `json:"registrationDate"`
	Deleted          bool   `json:"deleted"`
}

type UserListResponse struct {
	Users    []UserResponse `json:"users"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

type NewsResponse struct {
	Id          int64  `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	Content     string `json:"content"`
	FullContent string `json:"fullContent"`
	Image       string `json:"image"`
}

type NewsListResponse struct {
	News []NewsResponse `json:"news"`
}
