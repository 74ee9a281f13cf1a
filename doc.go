/*
Package numlist represents non-negative integers of any size as linked
sequences of digits in a chosen radix.

The digit list itself lives in the digits sub-package. This package holds
the radix codec (Encode, Decode), the decimal and radix text forms, and the
alphabet Codec used to render digits. The bitwise-OR combination and the
profile-bound conversions are in the combine sub-package.

*/
package numlist
