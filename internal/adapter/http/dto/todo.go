package dto

type TodoForm struct {
	Title       string `form:"title" binding:"required,min=1,max=100"`
	Description string `form:"description" binding:"required,min=1,max=200"`
	Priority    int    `form:"priority" binding:"required,gte=1,lte=5"`
}
