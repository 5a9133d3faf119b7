package models

import "testing"

func TestItemValidate(t *testing.T) {
	valid := Item{
		Category: "Poetry",
		Title:    "A Light in the Attic",
		Price:    51.77,
		Stock:    22,
		Code:     "a897fe39b1053632",
		URL:      "https://books.toscrape.com/catalogue/a-light-in-the-attic_1000/index.html",
	}

	tests := []struct {
		name    string
		mutate  func(*Item)
		wantErr bool
	}{
		{name: "valid item", mutate: func(*Item) {}, wantErr: false},
		{name: "zero price ok", mutate: func(i *Item) { i.Price = 0 }, wantErr: false},
		{name: "zero stock ok", mutate: func(i *Item) { i.Stock = 0 }, wantErr: false},
		{name: "missing category", mutate: func(i *Item) { i.Category = " " }, wantErr: true},
		{name: "missing title", mutate: func(i *Item) { i.Title = "" }, wantErr: true},
		{name: "negative price", mutate: func(i *Item) { i.Price = -1 }, wantErr: true},
		{name: "negative stock", mutate: func(i *Item) { i.Stock = -1 }, wantErr: true},
		{name: "missing code", mutate: func(i *Item) { i.Code = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid
			tt.mutate(&item)
			err := item.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestItemValidateNil(t *testing.T) {
	var item *Item
	if err := item.Validate(); err == nil {
		t.Error("Validate() on nil item = nil, want error")
	}
}
