package request

// ByIDRequest is a common struct for endpoints that require an ID path parameter.
type ByIDRequest struct {
	ID string `uri:"id" binding:"required,uuid"`
}

// ByMatriculaRequest binds an employee number path parameter.
type ByMatriculaRequest struct {
	Matricula int `uri:"matricula" binding:"required,min=1,max=2147483647"`
}

// MatriculaQuery binds an optional employee number query parameter.
type MatriculaQuery struct {
	Matricula *int `form:"matricula" binding:"omitempty,min=1,max=2147483647"`
}
