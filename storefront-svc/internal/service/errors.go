package service

import "errors"

var (
	ErrForbidden           = errors.New("restaurant belongs to another account")
	ErrNoPendingRestaurant = errors.New("no restaurant details staged for this account")
	ErrInvalidInput        = errors.New("invalid input")
)

// Messages shown to restaurant owners and customers.
const (
	MsgRestaurantNotFound = "المطعم غير موجود"
	MsgUsernameTaken      = "اسم المطعم في الرابط مُستخدم بالفعل"
	MsgForbidden          = "ليس لديك صلاحية لتعديل هذا المطعم"
	MsgLoadFailed         = "حدث خطأ في تحميل البيانات"
	MsgSaveFailed         = "حدث خطأ أثناء الحفظ"
	MsgNotFound           = "العنصر غير موجود"
	MsgInvalidInput       = "البيانات المدخلة غير صحيحة"
	MsgUploadFailed       = "فشل رفع الصورة"
)
