package domain

type RoomForm struct {
	Name        string   `form:"name" binding:"required,max=80" label:"Name"`
	RoomNo      string   `form:"roomNo" binding:"required,max=20" label:"Room number"`
	Price       float64  `form:"price" binding:"required,gt=0" label:"Price per slot" input:"number"`
	Type        RoomType `form:"type" binding:"omitempty,oneof=standard deluxe private" label:"Type" input:"select" options:"standard,deluxe,private"`
	Description string   `form:"description" binding:"omitempty,max=2000" label:"Description" input:"textarea"`
	ImageInput
}

func RoomFormOf(r CafeRoom) RoomForm {
	return RoomForm{
		Name: r.Name, RoomNo: r.RoomNo, Price: r.Price, Type: r.Type, Description: r.Description,
		ImageInput: ImageInput{URL: firstImage(r.Images)},
	}
}

func (f RoomForm) ToRoom() CafeRoom {
	return CafeRoom{Name: f.Name, RoomNo: f.RoomNo, Price: f.Price, Type: f.Type, Description: f.Description, Images: imagesOf(f.URL)}
}

// CafePetForm backs both the pet edit page and the pet registration wizard.
type CafePetForm struct {
	Name        string  `form:"name" binding:"required,max=80" label:"Name"`
	PetType     PetType `form:"petType" binding:"required,oneof=dog cat rabbit other" label:"Pet type" input:"select" options:"dog,cat,rabbit,other"`
	Breed       string  `form:"breed" binding:"omitempty,max=80" label:"Breed"`
	Sex         PetSex  `form:"sex" binding:"omitempty,oneof=male female" label:"Sex" input:"select" options:"male,female"`
	DateOfBirth string  `form:"dateOfBirth" binding:"omitempty,datetime=2006-01-02" label:"Date of birth" input:"date"`
	RoomID      int     `form:"roomId" binding:"omitempty,gt=0" label:"Room" input:"select" source:"rooms"`
	Description string  `form:"description" binding:"omitempty,max=2000" label:"Description" input:"textarea"`
	ImageInput
}

func CafePetFormOf(p CafePet) CafePetForm {
	return CafePetForm{
		Name: p.Name, PetType: p.PetType, Breed: p.Breed, Sex: p.Sex, DateOfBirth: p.DateOfBirth,
		RoomID: p.RoomID, Description: p.Description, ImageInput: ImageInput{URL: p.Image},
	}
}

func (f CafePetForm) ToCafePet() CafePet {
	return CafePet{
		Name: f.Name, PetType: f.PetType, Breed: f.Breed, Sex: f.Sex, DateOfBirth: f.DateOfBirth,
		RoomID: f.RoomID, Description: f.Description, Image: f.URL,
	}
}

type RoomSlotForm struct {
	RoomID    int    `form:"roomId" json:"roomId" binding:"required,gt=0" label:"Room" input:"select" source:"rooms"`
	Date      string `form:"date" json:"date" binding:"required,datetime=2006-01-02" label:"Date" input:"date"`
	StartTime string `form:"startTime" json:"startTime" binding:"required,clock" label:"Start" input:"time"`
	EndTime   string `form:"endTime" json:"endTime" binding:"required,clock,clockafter=StartTime" label:"End" input:"time"`
}
