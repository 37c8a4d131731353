// Package src is an annotated fixture consumed by extraction tests.
package src

import (
	"context"
	"time"
)

// Product is a product listed for sale.
//
//gateway:object
//gateway:directive @aws_api_key
type Product struct {
	ID          string `gateway:"name=id,scalar=ID"`
	Name        string
	Description *string
	Price       float64
	CreatedAt   time.Time
	Tags        []string
	Title       string `gateway:"deprecated=use name"`
	Secret      string `gateway:"-"`
}

//gateway:input
type ProductFilter struct {
	Query *string
	Limit int64 `gateway:"nullable"`
}

// Status is the lifecycle state of a product.
//
//gateway:enum
type Status string

const (
	StatusActive  Status = "ACTIVE"
	StatusRetired Status = "RETIRED"
)

//gateway:union Product
type SearchResult struct{}

// GetProduct returns one product by identifier.
//
//gateway:query datasource=ProductsLambda arn=arn:aws:lambda:us-east-1:123456789012:function:products
func GetProduct(ctx context.Context, id string) (*Product, error) {
	return nil, nil
}

//gateway:mutation placeOrder pipeline=ValidateCart,CreateOrder
func SubmitOrder(ctx context.Context, filter ProductFilter) (Product, error) {
	return Product{}, nil
}

//gateway:mutation datasource=ProductsLambda arn=arn:aws:lambda:us-east-1:123456789012:function:products
func RetireProduct(ctx context.Context, id string) error {
	return nil
}

//gateway:query datasource=ProductsLambda arn=arn:aws:lambda:us-east-1:123456789012:function:products returns=AWSTimestamp
func LastSync(ctx context.Context) (int64, error) {
	return 0, nil
}

//gateway:subscription datasource=EventsNone arn=arn:events
//gateway:directive @aws_subscribe(mutations: ["placeOrder"])
func OnProductChange(ctx context.Context) <-chan Product {
	return nil
}

//gateway:query
func Orphan(ctx context.Context) (string, error) {
	return "", nil
}
