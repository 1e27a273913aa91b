package model

type Department struct {
	ID   int64  `db:"department_id" json:"department_id"`
	Name string `db:"name" json:"name"`
}

type DepartmentRequest struct {
	Name Field `json:"name"`
}

type DepartmentWrite struct {
	Name any
}

func (r DepartmentRequest) Normalize() DepartmentWrite {
	return DepartmentWrite{Name: r.Name.Value()}
}
