package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/hnh-zeal/petopia-frontend-sub000/internal/core/domain"
)

// ListRooms returns one page of cafe rooms.
func (c *Client) ListRooms(ctx context.Context, p ListParams) (*domain.Page[domain.CafeRoom], error) {
	return list[domain.CafeRoom](ctx, c, "/rooms", p)
}

// GetRoom fetches a single cafe room.
func (c *Client) GetRoom(ctx context.Context, id int) (*domain.CafeRoom, error) {
	return get[domain.CafeRoom](ctx, c, "/rooms/"+strconv.Itoa(id))
}

// CreateRoom adds a cafe room.
func (c *Client) CreateRoom(ctx context.Context, in domain.CafeRoom) (*domain.CafeRoom, error) {
	return send[domain.CafeRoom](ctx, c, http.MethodPost, "/rooms", in)
}

// UpdateRoom patches a cafe room.
func (c *Client) UpdateRoom(ctx context.Context, id int, in domain.CafeRoom) (*domain.CafeRoom, error) {
	return send[domain.CafeRoom](ctx, c, http.MethodPatch, "/rooms/"+strconv.Itoa(id), in)
}

// ListCafePets returns one page of the pets living in the cafe.
func (c *Client) ListCafePets(ctx context.Context, p ListParams) (*domain.Page[domain.CafePet], error) {
	return list[domain.CafePet](ctx, c, "/cafe-pets", p)
}

// GetCafePet fetches a single cafe pet.
func (c *Client) GetCafePet(ctx context.Context, id int) (*domain.CafePet, error) {
	return get[domain.CafePet](ctx, c, "/cafe-pets/"+strconv.Itoa(id))
}

// CreateCafePet adds a cafe pet.
func (c *Client) CreateCafePet(ctx context.Context, in domain.CafePet) (*domain.CafePet, error) {
	return send[domain.CafePet](ctx, c, http.MethodPost, "/cafe-pets", in)
}

// UpdateCafePet patches a cafe pet.
func (c *Client) UpdateCafePet(ctx context.Context, id int, in domain.CafePet) (*domain.CafePet, error) {
	return send[domain.CafePet](ctx, c, http.MethodPatch, "/cafe-pets/"+strconv.Itoa(id), in)
}

// ListRoomSlots is filtered by roomId and date when booking.
func (c *Client) ListRoomSlots(ctx context.Context, p ListParams) (*domain.Page[domain.RoomSlot], error) {
	return list[domain.RoomSlot](ctx, c, "/room-slots", p)
}

// CreateRoomSlot opens a bookable time range for a room.
func (c *Client) CreateRoomSlot(ctx context.Context, in domain.RoomSlotForm) (*domain.RoomSlot, error) {
	return send[domain.RoomSlot](ctx, c, http.MethodPost, "/room-slots", in)
}

// ListRoomBookings returns one page of room bookings.
func (c *Client) ListRoomBookings(ctx context.Context, p ListParams) (*domain.Page[domain.RoomBooking], error) {
	return list[domain.RoomBooking](ctx, c, "/room-booking", p)
}

// CreateRoomBooking books a room slot for a user.
func (c *Client) CreateRoomBooking(ctx context.Context, in domain.RoomBooking) (*domain.RoomBooking, error) {
	return send[domain.RoomBooking](ctx, c, http.MethodPost, "/room-booking", in)
}
