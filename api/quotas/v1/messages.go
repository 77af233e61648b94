package quotasv1

type CheckRequest struct {
	Subject  string `json:"subject"`
	Category string `json:"category"`
}

type CheckResponse struct {
	Remaining int64 `json:"remaining"`
	Exhausted bool  `json:"exhausted"`
}

type InspectRequest struct {
	Subject  string `json:"subject"`
	Category string `json:"category"`
}

type InspectResponse struct {
	Remaining int64 `json:"remaining"`
	// Оставшееся время окна в миллисекундах
	TtlMs  int64 `json:"ttl_ms"`
	Active bool  `json:"active"`
}

type ResetRequest struct {
	Subject  string `json:"subject"`
	Category string `json:"category"`
}

type ResetResponse struct{}

type FlushRequest struct{}

type FlushResponse struct {
	Deleted int64 `json:"deleted"`
}

type ExpiryRequest struct {
	Category string `json:"category"`
}

type ExpiryResponse struct {
	Seconds int64 `json:"seconds"`
}

type Category struct {
	Name           string `json:"name"`
	Limit          int64  `json:"limit"`
	ExpiresSeconds int64  `json:"expires_seconds"`
	// Managed - категория хранится в БД и меняется через SetCategory/DeleteCategory
	Managed bool `json:"managed"`
}

type ListCategoriesRequest struct{}

type ListCategoriesResponse struct {
	Categories []*Category `json:"categories"`
}

type SetCategoryRequest struct {
	Name           string `json:"name"`
	Limit          int64  `json:"limit"`
	ExpiresSeconds int64  `json:"expires_seconds"`
}

type SetCategoryResponse struct{}

type DeleteCategoryRequest struct {
	Name string `json:"name"`
}

type DeleteCategoryResponse struct{}

// Геттеры в стиле protoc-gen-go: безопасны для nil.

func (x *CheckRequest) GetSubject() string {
	if x == nil {
		return ""
	}
	return x.Subject
}

func (x *CheckRequest) GetCategory() string {
	if x == nil {
		return ""
	}
	return x.Category
}

func (x *InspectRequest) GetSubject() string {
	if x == nil {
		return ""
	}
	return x.Subject
}

func (x *InspectRequest) GetCategory() string {
	if x == nil {
		return ""
	}
	return x.Category
}

func (x *ResetRequest) GetSubject() string {
	if x == nil {
		return ""
	}
	return x.Subject
}

func (x *ResetRequest) GetCategory() string {
	if x == nil {
		return ""
	}
	return x.Category
}

func (x *ExpiryRequest) GetCategory() string {
	if x == nil {
		return ""
	}
	return x.Category
}
