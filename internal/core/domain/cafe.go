package domain

type RoomType string

const (
	RoomStandard RoomType = "standard"
	RoomDeluxe   RoomType = "deluxe"
	RoomPrivate  RoomType = "private"
)

var RoomTypes = []RoomType{RoomStandard, RoomDeluxe, RoomPrivate}

type PetSex string

const (
	SexMale   PetSex = "male"
	SexFemale PetSex = "female"
)

var PetSexes = []PetSex{SexMale, SexFemale}

type PetType string

const (
	PetDog    PetType = "dog"
	PetCat    PetType = "cat"
	PetRabbit PetType = "rabbit"
	PetOther  PetType = "other"
)

var PetTypes = []PetType{PetDog, PetCat, PetRabbit, PetOther}

type CafeRoom struct {
	ID          int       `json:"id,omitempty"`
	Name        string    `json:"name"`
	RoomNo      string    `json:"roomNo"`
	Price       float64   `json:"price"`
	Type        RoomType  `json:"type,omitempty"`
	Description string    `json:"description,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Pets        []CafePet `json:"pets,omitempty"`
}

type CafePet struct {
	ID          int     `json:"id,omitempty"`
	Name        string  `json:"name"`
	RoomID      int     `json:"roomId,omitempty"`
	DateOfBirth string  `json:"dateOfBirth,omitempty"`
	Sex         PetSex  `json:"sex,omitempty"`
	PetType     PetType `json:"petType,omitempty"`
	Breed       string  `json:"breed,omitempty"`
	Description string  `json:"description,omitempty"`
	Image       string  `json:"image,omitempty"`
}

type RoomSlot struct {
	ID        int    `json:"id,omitempty"`
	RoomID    int    `json:"roomId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsBooked  bool   `json:"isBooked"`
}

type RoomBooking struct {
	ID           int           `json:"id,omitempty"`
	UserID       int           `json:"userId"`
	User         *User         `json:"user,omitempty"`
	RoomID       int           `json:"roomId"`
	Room         *CafeRoom     `json:"room,omitempty"`
	SlotIDs      []int         `json:"slotIds,omitempty"`
	Date         string        `json:"date"`
	Price        float64       `json:"price"`
	Status       BookingStatus `json:"status"`
	CancelReason string        `json:"cancelReason,omitempty"`
	CreatedAt    string        `json:"createdAt,omitempty"`
}
