package errs

import "fmt"

// ErrUnknownColumn Кастомная ошибка, сообщающая, что колонка finder'а не зарегистрирована.
type ErrUnknownColumn struct {
	ColumnID string
}

func (uc *ErrUnknownColumn) Error() string {
	return fmt.Sprintf("Колонка `%s` не зарегистрирована", uc.ColumnID)
}

func NewErrUnknownColumn(columnID string) *ErrUnknownColumn {
	return &ErrUnknownColumn{ColumnID: columnID}
}

// ErrItemNotFound Кастомная ошибка, сообщающая, что в колонке нет элемента с таким id.
type ErrItemNotFound struct {
	ColumnID string
	ItemID   string
}

func (in *ErrItemNotFound) Error() string {
	return fmt.Sprintf("Элемент `%s` не найден в колонке `%s`", in.ItemID, in.ColumnID)
}

func NewErrItemNotFound(columnID, itemID string) *ErrItemNotFound {
	return &ErrItemNotFound{ColumnID: columnID, ItemID: itemID}
}

// ErrInvalidPath Кастомная ошибка разбора пути finder'а.
type ErrInvalidPath struct {
	Path   string
	Reason string
}

func (ip *ErrInvalidPath) Error() string {
	return fmt.Sprintf("Некорректный путь `%s`: %s", ip.Path, ip.Reason)
}

func NewErrInvalidPath(path, reason string) *ErrInvalidPath {
	return &ErrInvalidPath{Path: path, Reason: reason}
}

// ErrUnknownPlace Кастомная ошибка, сообщающая, что для name token'а нет представления.
type ErrUnknownPlace struct {
	NameToken string
}

func (up *ErrUnknownPlace) Error() string {
	return fmt.Sprintf("Представление для `%s` не зарегистрировано", up.NameToken)
}

func NewErrUnknownPlace(nameToken string) *ErrUnknownPlace {
	return &ErrUnknownPlace{NameToken: nameToken}
}

// ErrInvalidParameter Кастомная ошибка, сообщающая о некорректном параметре страницы.
type ErrInvalidParameter struct {
	Name  string
	Value string
	Err   error
}

func (ip *ErrInvalidParameter) Error() string {
	return fmt.Sprintf("Некорректное значение `%s` параметра `%s`: %v", ip.Value, ip.Name, ip.Err)
}

func (ip *ErrInvalidParameter) Unwrap() error {
	return ip.Err
}

func NewErrInvalidParameter(name, value string, err error) *ErrInvalidParameter {
	return &ErrInvalidParameter{Name: name, Value: value, Err: err}
}
