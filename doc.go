/*

imgcoords takes an image file (it supports jpeg, png, gif, bmp, tiff and
webp encodings) and writes its normalized coordinate axes and pixel
colors to a text file, one value per line. The output is meant to be
parsed by external programs, its output is formated as following:
	x_0 ... x_{d-1}		one per line, d = --dim (default 1024)
	y_0 ... y_{d-1}		one per line
	(r, g, b)		one per pixel, row-major

Axis values are i/(d-1) as float32. Pixels drop any alpha channel.

Example:
	imgcoords -o imgcoords.txt img.png
	imgcoords info img.png   # 30 96 4928 4 5
	imgcoords verify --image img.png imgcoords.txt

*/
package main
