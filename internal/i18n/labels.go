package i18n

import "product-compare/internal/model"

// Labels holds every string the UI shows for one language.
type Labels struct {
	Lang Language

	Title          string
	SwitchLanguage string

	ProductName            string
	ProductNamePlaceholder string
	Price                  string
	PricePlaceholder       string
	Quantity               string
	QuantityPlaceholder    string
	UnitPrice              string

	AddProduct    string
	Calculate     string
	ClearProducts string

	MetricLabel string
	BestLabel   string
	MeanLabel   string

	Errors map[model.ErrorKind]string
}

var labels = map[Language]Labels{
	Thai: {
		Lang:                   Thai,
		Title:                  "เปรียบเทียบสินค้า",
		SwitchLanguage:         "เปลี่ยนภาษาเป็นอังกฤษ",
		ProductName:            "ชื่อสินค้า",
		ProductNamePlaceholder: "กรอกชื่อสินค้า",
		Price:                  "ราคา",
		PricePlaceholder:       "กรอกราคา",
		Quantity:               "จำนวน",
		QuantityPlaceholder:    "กรอกจำนวน",
		UnitPrice:              "ราคาต่อหน่วย",
		AddProduct:             "เพิ่มสินค้า",
		Calculate:              "คำนวณ CV",
		ClearProducts:          "ล้างสินค้า",
		MetricLabel:            "การกระจายของราคา (CV%)",
		BestLabel:              "คุ้มค่าที่สุด (ราคาต่อหน่วยต่ำสุด)",
		MeanLabel:              "ราคาเฉลี่ย",
		Errors: map[model.ErrorKind]string{
			model.KindMissingField:     "กรุณากรอกข้อมูลให้ครบทุกช่อง",
			model.KindInsufficientData: "กรุณาเพิ่มสินค้าอย่างน้อย 2 รายการเพื่อเปรียบเทียบ",
			model.KindInvalidInput:     "จำนวนต้องมากกว่า 0 และราคาต้องไม่ติดลบ",
			model.KindInternal:         "เกิดข้อผิดพลาด กรุณาลองใหม่",
		},
	},
	English: {
		Lang:                   English,
		Title:                  "Product Comparison",
		SwitchLanguage:         "Switch to Thai",
		ProductName:            "Product Name",
		ProductNamePlaceholder: "Enter product name",
		Price:                  "Price",
		PricePlaceholder:       "Enter price",
		Quantity:               "Quantity",
		QuantityPlaceholder:    "Enter quantity",
		UnitPrice:              "Price per unit",
		AddProduct:             "Add Product",
		Calculate:              "Calculate CV",
		ClearProducts:          "Clear Products",
		MetricLabel:            "Price dispersion (CV%)",
		BestLabel:              "Best value (lowest price per unit)",
		MeanLabel:              "Mean price",
		Errors: map[model.ErrorKind]string{
			model.KindMissingField:     "Please fill in all fields with valid data.",
			model.KindInsufficientData: "Please add at least 2 products to compare.",
			model.KindInvalidInput:     "Quantity must be greater than 0 and price must not be negative.",
			model.KindInternal:         "Something went wrong, please try again.",
		},
	},
}

// For returns the labels of l, falling back to Default.
func For(l Language) Labels {
	if lb, ok := labels[l]; ok {
		return lb
	}
	return labels[Default]
}

// Error returns the message for an error kind, or "" for KindNone.
func (lb Labels) Error(kind model.ErrorKind) string {
	if kind == model.KindNone {
		return ""
	}
	if msg, ok := lb.Errors[kind]; ok {
		return msg
	}
	return lb.Errors[model.KindInternal]
}
