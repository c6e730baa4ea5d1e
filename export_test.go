package emograd

var NewTrendBuffer = newTrendBuffer
