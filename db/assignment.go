package db

// Assignment 用于 UPDATE 语句中的 SET 部分
// Assign("name", "Dwight") -> SET "name"=$1
type Assignment struct {
	column string
	val    Expression
}

func Assign(column string, val any) Assignment {
	return Assignment{
		column: column,
		val:    exprOf(val),
	}
}
