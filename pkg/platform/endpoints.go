package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/angelmondragon/salonadmin/pkg/salon"
)

func (c *Client) ListPlaces(ctx context.Context) ([]salon.Place, error) {
	var places []salon.Place
	err := c.do(ctx, call{operation: "list_places", method: http.MethodGet, path: "/places", out: &places})
	return places, err
}

func (c *Client) GetPlace(ctx context.Context, placeID int64) (salon.Place, error) {
	var place salon.Place
	err := c.do(ctx, call{operation: "get_place", method: http.MethodGet, path: fmt.Sprintf("/places/%d", placeID), out: &place})
	return place, err
}

func (c *Client) CreatePlace(ctx context.Context, input salon.PlaceInput) (salon.Place, error) {
	var place salon.Place
	err := c.do(ctx, call{operation: "create_place", method: http.MethodPost, path: "/places", body: input, out: &place})
	return place, err
}

func (c *Client) UpdatePlace(ctx context.Context, placeID int64, input salon.PlaceInput) (salon.Place, error) {
	var place salon.Place
	err := c.do(ctx, call{operation: "update_place", method: http.MethodPut, path: fmt.Sprintf("/places/%d", placeID), body: input, out: &place})
	return place, err
}

func (c *Client) ListCustomers(ctx context.Context, placeID int64) ([]salon.Customer, error) {
	var customers []salon.Customer
	err := c.do(ctx, call{operation: "list_customers", method: http.MethodGet, path: fmt.Sprintf("/places/%d/customers", placeID), out: &customers})
	return customers, err
}

func (c *Client) ListEmployees(ctx context.Context, placeID int64) ([]salon.Employee, error) {
	var employees []salon.Employee
	err := c.do(ctx, call{operation: "list_employees", method: http.MethodGet, path: fmt.Sprintf("/places/%d/employees", placeID), out: &employees})
	return employees, err
}

// ListBookings returns the bookings of a place between two calendar days, inclusive.
func (c *Client) ListBookings(ctx context.Context, placeID int64, from, to time.Time) ([]salon.Booking, error) {
	query := url.Values{}
	query.Set("from", from.Format(time.DateOnly))
	query.Set("to", to.Format(time.DateOnly))

	var bookings []salon.Booking
	err := c.do(ctx, call{
		operation: "list_bookings",
		method:    http.MethodGet,
		path:      fmt.Sprintf("/places/%d/bookings", placeID),
		query:     query,
		out:       &bookings,
	})
	return bookings, err
}

func (c *Client) GetBooking(ctx context.Context, bookingID int64) (salon.Booking, error) {
	var booking salon.Booking
	err := c.do(ctx, call{operation: "get_booking", method: http.MethodGet, path: fmt.Sprintf("/bookings/%d", bookingID), out: &booking})
	return booking, err
}

// UpdateBooking sends a partial update; only the fields set on update are transmitted.
func (c *Client) UpdateBooking(ctx context.Context, bookingID int64, update salon.BookingUpdate) (salon.Booking, error) {
	var booking salon.Booking
	err := c.do(ctx, call{
		operation: "update_booking",
		method:    http.MethodPatch,
		path:      fmt.Sprintf("/bookings/%d", bookingID),
		body:      update,
		out:       &booking,
	})
	return booking, err
}

func (c *Client) CreateCampaign(ctx context.Context, placeID int64, input salon.CampaignInput) (salon.Campaign, error) {
	var campaign salon.Campaign
	err := c.do(ctx, call{
		operation: "create_campaign",
		method:    http.MethodPost,
		path:      fmt.Sprintf("/places/%d/campaigns", placeID),
		body:      input,
		out:       &campaign,
	})
	return campaign, err
}
