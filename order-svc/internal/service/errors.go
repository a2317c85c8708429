package service

import "errors"

var (
	ErrForbidden       = errors.New("restaurant belongs to another account")
	ErrInvalidInput    = errors.New("invalid input")
	ErrItemUnavailable = errors.New("menu item is not available")
)

// Messages shown to customers and restaurant owners.
const (
	MsgRestaurantNotFound = "المطعم غير موجود"
	MsgCartNotFound       = "السلة غير موجودة أو انتهت صلاحيتها"
	MsgItemUnavailable    = "هذا الصنف غير متوفر حالياً"
	MsgForbidden          = "ليس لديك صلاحية لعرض طلبات هذا المطعم"
	MsgNotFound           = "العنصر غير موجود"
	MsgInvalidInput       = "البيانات المدخلة غير صحيحة"
	MsgLoadFailed         = "حدث خطأ في تحميل البيانات"
	MsgSaveFailed         = "حدث خطأ أثناء الحفظ"
	MsgOrdersLoadFailed   = "حدث خطأ في تحميل الطلبات"
	MsgOrderUpdateFailed  = "حدث خطأ في تحديث الطلب"
	MsgCartBusy           = "تم تعديل السلة من طلب آخر، يرجى المحاولة مرة أخرى"
)
