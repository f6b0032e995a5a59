package domain

import "fmt"

type CareServiceForm struct {
	Name        string          `form:"name" binding:"required,min=2,max=120" label:"Name"`
	Type        CareServiceType `form:"type" binding:"required,oneof=grooming sitting walking training" label:"Type" input:"select" options:"grooming,sitting,walking,training"`
	Description string          `form:"description" binding:"omitempty,max=2000" label:"Description" input:"textarea"`
	Price       float64         `form:"price" binding:"required,gt=0" label:"Price" input:"number"`
	CategoryIDs []int           `form:"categoryIds" binding:"omitempty,dive,gt=0" label:"Categories" input:"checkboxes" source:"categories"`
	AddOns      string          `form:"addOns" binding:"omitempty,addons" label:"Add-ons (Name | Price | Description)" input:"textarea"`
	ImageInput
}

func CareServiceFormOf(s CareService) CareServiceForm {
	ids := s.CategoryIDs
	if len(ids) == 0 {
		for _, c := range s.Categories {
			ids = append(ids, c.ID)
		}
	}
	return CareServiceForm{
		Name: s.Name, Type: s.Type, Description: s.Description, Price: s.Price,
		CategoryIDs: ids, AddOns: FormatAddOns(s.AddOns),
		ImageInput: ImageInput{URL: firstImage(s.Images)},
	}
}

func (f CareServiceForm) ToCareService() (CareService, error) {
	addOns, err := ParseAddOns(f.AddOns)
	if err != nil {
		return CareService{}, fmt.Errorf("add-ons: %w", err)
	}
	return CareService{
		Name: f.Name, Type: f.Type, Description: f.Description, Price: f.Price,
		CategoryIDs: f.CategoryIDs, AddOns: addOns, Images: imagesOf(f.URL),
	}, nil
}

type PetSitterForm struct {
	Name       string `form:"name" binding:"required,min=2,max=80" label:"Name"`
	Email      string `form:"email" binding:"required,email" label:"Email" input:"email"`
	Phone      string `form:"phone" binding:"omitempty,min=6,max=20" label:"Phone"`
	ServiceIDs []int  `form:"serviceIds" binding:"omitempty,dive,gt=0" label:"Services" input:"checkboxes" source:"services"`
	About      string `form:"about" binding:"omitempty,max=1000" label:"About" input:"textarea"`
	ImageInput
}

func PetSitterFormOf(s PetSitter) PetSitterForm {
	ids := s.ServiceIDs
	if len(ids) == 0 {
		for _, svc := range s.Services {
			ids = append(ids, svc.ID)
		}
	}
	return PetSitterForm{
		Name: s.Name, Email: s.Email, Phone: s.Phone, ServiceIDs: ids, About: s.About,
		ImageInput: ImageInput{URL: s.ProfileURL},
	}
}

func (f PetSitterForm) ToPetSitter() PetSitter {
	return PetSitter{Name: f.Name, Email: f.Email, Phone: f.Phone, ServiceIDs: f.ServiceIDs, About: f.About, ProfileURL: f.URL}
}
