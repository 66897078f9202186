package csvstore

// sampleRoster es el padrón de arranque que entrega RRHH para los pilotos.
// Se escribe tal cual cuando no existe el archivo de empleados.
const sampleRoster = `EmployeeNumber,EmployeeName
"00071215","Pyae Phyo Latt"
"00070782","Ni Ni Aung"
"00071156","Ayar Lwin"
"00070098","Aye Aye Tun"
"00071182","Myo Min Min Wai"
"00070039","Kyaw Zayar Myint"
"00070961","Min Soe Moe Naung"
"00070671","Tin Maung Htwe"
"00070459","San San Aung"
"00070081","Nilar"
"00070291","Ohnmar"
"00070783","Ko Ko Zin"
"00070314","Zaw Zaw Oo @ Win Aung"
"00070036","Theingi Aung"
"00070618","Min Hein Kyaw"
"00071216","Kyaw Soe Moe"
"00071157","Nwet Nwet San"
"00070598","Tin Tun Aung"
"00070292","Than Than Nwet"
"00070129","Thandar Win"
"00070725","Mo Mo Phone Maw @ Moh Moh Naing"
"00070126","Su Sandy Linn"
"00071168","Aung Ko Ko"
"00070798","Htin Lin Oo"
"00071214","Zin Ko Myint"
"00071239","Aung Thu Lwin"
"00070785","Ko Ko Htet"
"00070636","Nyein Nyein Hlaing"
"00070792","Zaw Win"
"00071577","Phyo Wai Maung"
"00070944","Than Htike Oo"
"00070128","Khine Nyo Tun"
"00071201","Kyaw Soe Win"
"00070730","Yan Naing"
"00071131","Wai Mar"
"00071709","Htoo Yadanar Kyaw"
"00071002","Soe San"
"00070962","Zin Thu Ma Ma Aung"
"00071909","Aung Kyaw Soe"
`
