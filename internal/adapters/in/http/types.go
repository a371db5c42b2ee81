package http

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

// Wire types of openapi.yaml.

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	Id openapi_types.UUID `json:"id"`
}

type NewClient struct {
	Kind           string `json:"kind" validate:"required"`
	Email          string `json:"email,omitempty" validate:"omitempty,email"`
	Phone          string `json:"phone,omitempty"`
	Address        string `json:"address,omitempty"`
	FullName       string `json:"fullName,omitempty"`
	NationalId     string `json:"nationalId,omitempty"`
	LegalName      string `json:"legalName,omitempty"`
	RegistrationId string `json:"registrationId,omitempty"`
	AdminContact   string `json:"adminContact,omitempty"`
}

type Client struct {
	Id             openapi_types.UUID `json:"id"`
	Kind           string             `json:"kind"`
	DisplayName    string             `json:"displayName"`
	Email          string             `json:"email,omitempty"`
	Phone          string             `json:"phone,omitempty"`
	Address        string             `json:"address,omitempty"`
	FullName       string             `json:"fullName,omitempty"`
	NationalId     string             `json:"nationalId,omitempty"`
	IdPhotoUrl     string             `json:"idPhotoUrl,omitempty"`
	LegalName      string             `json:"legalName,omitempty"`
	RegistrationId string             `json:"registrationId,omitempty"`
	AdminContact   string             `json:"adminContact,omitempty"`
}

type NewProduct struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description,omitempty"`
	Price       decimal.Decimal `json:"price"`
}

type Product struct {
	Id          openapi_types.UUID `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Price       decimal.Decimal    `json:"price"`
}

type NewRouteDefinition struct {
	Name string `json:"name" validate:"required"`
	City string `json:"city" validate:"required"`
}

type RouteDefinition struct {
	Id   openapi_types.UUID `json:"id"`
	Name string             `json:"name"`
	City string             `json:"city"`
}

type OrderDetails struct {
	Quantity            int                 `json:"quantity,omitempty" validate:"gte=0"`
	Indefinite          bool                `json:"indefinite,omitempty"`
	DurationDays        int                 `json:"durationDays,omitempty" validate:"gte=0"`
	StartDate           *openapi_types.Date `json:"startDate,omitempty"`
	EndDate             *openapi_types.Date `json:"endDate,omitempty"`
	Location            string              `json:"location,omitempty"`
	Contact             string              `json:"contact,omitempty"`
	SanitationFrequency int                 `json:"sanitationFrequency,omitempty" validate:"gte=0"`
	Notes               string              `json:"notes,omitempty"`
}

type OrderPayload struct {
	ProductId         *openapi_types.UUID `json:"productId,omitempty"`
	RouteDefinitionId *openapi_types.UUID `json:"routeDefinitionId,omitempty"`
	Type              string              `json:"type,omitempty"`
	Details           OrderDetails        `json:"details"`
}

type NewOrder struct {
	OrderPayload
	ClientId openapi_types.UUID `json:"clientId" validate:"required"`
	Number   int64              `json:"number,omitempty" validate:"gte=0"`
	Date     *time.Time         `json:"date,omitempty"`
}

type Order struct {
	OrderPayload
	Id         openapi_types.UUID `json:"id"`
	Number     int64              `json:"number"`
	Date       time.Time          `json:"date"`
	ClientId   openapi_types.UUID `json:"clientId"`
	ClientName string             `json:"clientName,omitempty"`
}

type OrderTask struct {
	HasTask bool                `json:"hasTask"`
	TaskId  *openapi_types.UUID `json:"taskId,omitempty"`
	RouteId *openapi_types.UUID `json:"routeId,omitempty"`
}

type DispatchOrder struct {
	RouteId openapi_types.UUID `json:"routeId" validate:"required"`
}

type NewRoute struct {
	Date       openapi_types.Date `json:"date" validate:"required"`
	EmployeeId openapi_types.UUID `json:"employeeId" validate:"required"`
	County     string             `json:"county,omitempty"`
}

type Route struct {
	Id           openapi_types.UUID `json:"id"`
	Date         openapi_types.Date `json:"date"`
	EmployeeId   openapi_types.UUID `json:"employeeId"`
	EmployeeName string             `json:"employeeName,omitempty"`
	County       string             `json:"county,omitempty"`
	TaskCount    int                `json:"taskCount"`
	Tasks        []Task             `json:"tasks,omitempty"`
}

type AssignDriver struct {
	EmployeeId openapi_types.UUID `json:"employeeId" validate:"required"`
}

type NewTask struct {
	Type          string     `json:"type" validate:"required"`
	ScheduledTime *time.Time `json:"scheduledTime,omitempty"`
	Address       string     `json:"address,omitempty"`
	ClientName    string     `json:"clientName,omitempty"`
	ClientPhone   string     `json:"clientPhone,omitempty"`
	InternalNotes string     `json:"internalNotes,omitempty"`
}

type Photo struct {
	Id          openapi_types.UUID `json:"id"`
	ImageUrl    string             `json:"imageUrl"`
	Description string             `json:"description,omitempty"`
}

type Task struct {
	Id            openapi_types.UUID  `json:"id"`
	RouteId       openapi_types.UUID  `json:"routeId"`
	OrderId       *openapi_types.UUID `json:"orderId,omitempty"`
	Type          string              `json:"type"`
	ScheduledTime time.Time           `json:"scheduledTime"`
	Status        string              `json:"status"`
	Address       string              `json:"address,omitempty"`
	ClientName    string              `json:"clientName,omitempty"`
	ClientPhone   string              `json:"clientPhone,omitempty"`
	InternalNotes string              `json:"internalNotes,omitempty"`
	Photos        []Photo             `json:"photos"`
}

type TaskStatus struct {
	Status string `json:"status" validate:"required"`
}

type NewEmployee struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required,min=6"`
	Name     string   `json:"name" validate:"required"`
	Phone    string   `json:"phone,omitempty"`
	County   string   `json:"county,omitempty"`
	Roles    []string `json:"roles,omitempty" validate:"dive,required"`
}

type Employee struct {
	Id     openapi_types.UUID `json:"id"`
	Email  string             `json:"email"`
	Name   string             `json:"name"`
	Phone  string             `json:"phone,omitempty"`
	County string             `json:"county,omitempty"`
	Roles  []string           `json:"roles"`
}

type NewRole struct {
	Name string `json:"name" validate:"required"`
}
